package booking

import (
	"context"

	bookingRepo "travelagent/database/repository/booking"
	"travelagent/models"
	"travelagent/services/tasks"

	"go.uber.org/zap"
)

// BookingService defines the booking operations exposed over HTTP.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id int) (*models.Booking, error)
	CancelBooking(ctx context.Context, id int) error
}

// DefaultBookingService stores bookings in Repo and announces confirmed
// ones through Notifier.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier tasks.Enqueuer
	Logger   *zap.Logger
}
