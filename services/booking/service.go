package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "travelagent/database/repository/booking"
	"travelagent/models"
	"travelagent/services/tasks"
	"travelagent/utils"

	"go.uber.org/zap"
)

const (
	StatusConfirmed = "confirmed"
	demoUserID      = 1
)

var bookingTypes = map[string]bool{
	models.BookingTypeFlight:    true,
	models.BookingTypeHotel:     true,
	models.BookingTypeTransport: true,
}

func NewBookingService(repo bookingRepo.BookingRepository, notifier tasks.Enqueuer, logger *zap.Logger) *DefaultBookingService {
	if notifier == nil {
		notifier = tasks.NoopEnqueuer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{Repo: repo, Notifier: notifier, Logger: logger}
}

// CreateBooking validates the request, stores a confirmed booking and
// enqueues its confirmation notice. A failed enqueue is logged and does not
// undo the booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	kind := strings.ToLower(strings.TrimSpace(firstNonEmpty(req.BookingType, req.Type)))
	if kind == "" {
		return nil, utils.NewValidationError("type", "Booking type is required")
	}
	if !bookingTypes[kind] {
		return nil, utils.NewValidationError("type", fmt.Sprintf("Unsupported booking type: %s", kind))
	}
	itemID := firstNonEmpty(string(req.ItemID), string(req.ID))
	if itemID == "" {
		return nil, utils.NewValidationError("id", "Item id is required")
	}

	userID := int(req.UserID)
	if userID <= 0 {
		userID = demoUserID
	}

	b := &models.Booking{
		UserID:      userID,
		BookingType: kind,
		ItemID:      itemID,
		PaymentID:   strings.TrimSpace(req.PaymentID),
		OrderID:     strings.TrimSpace(req.OrderID),
		Status:      StatusConfirmed,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	s.Logger.Info("Booking created", zap.Int("id", b.ID), zap.String("type", b.BookingType), zap.String("item", b.ItemID))

	notice := models.BookingNotice{
		BookingID:   b.ID,
		UserID:      b.UserID,
		BookingType: b.BookingType,
		ItemID:      b.ItemID,
		PaymentID:   b.PaymentID,
	}
	if err := s.Notifier.EnqueueBookingConfirmed(ctx, notice); err != nil {
		s.Logger.Warn("Failed to enqueue booking confirmation", zap.Int("id", b.ID), zap.Error(err))
	}
	return b, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("Booking cancelled", zap.Int("id", id))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
