package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "travelagent/database/repository/booking"
	"travelagent/models"
	"travelagent/utils"
)

type recordingEnqueuer struct {
	notices []models.BookingNotice
	err     error
}

func (r *recordingEnqueuer) EnqueueBookingConfirmed(ctx context.Context, n models.BookingNotice) error {
	r.notices = append(r.notices, n)
	return r.err
}

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name     string
		req      models.BookingRequest
		wantErr  bool
		wantType string
		wantItem string
	}{
		{name: "frontend shape", req: models.BookingRequest{Type: "hotel", ID: "pune_hotel_2"}, wantType: "hotel", wantItem: "pune_hotel_2"},
		{name: "explicit fields", req: models.BookingRequest{BookingType: "Flight", ItemID: "flight_4", UserID: 9}, wantType: "flight", wantItem: "flight_4"},
		{name: "missing type", req: models.BookingRequest{ID: "transport_1"}, wantErr: true},
		{name: "unknown type", req: models.BookingRequest{Type: "cruise", ID: "x"}, wantErr: true},
		{name: "missing item", req: models.BookingRequest{Type: "transport"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingEnqueuer{}
			svc := NewBookingService(bookingRepo.NewMemoryBookingRepo(), notifier, nil)

			b, err := svc.CreateBooking(context.Background(), tt.req)
			if tt.wantErr {
				var verr *utils.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("got %v, want ValidationError", err)
				}
				if len(notifier.notices) != 0 {
					t.Error("notice sent for rejected booking")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateBooking: %v", err)
			}
			if b.ID != 1 || b.Status != StatusConfirmed || b.CreatedAt.IsZero() {
				t.Errorf("unexpected booking %+v", b)
			}
			if b.BookingType != tt.wantType || b.ItemID != tt.wantItem {
				t.Errorf("got %s/%s, want %s/%s", b.BookingType, b.ItemID, tt.wantType, tt.wantItem)
			}
			if b.UserID <= 0 {
				t.Errorf("user id %d", b.UserID)
			}
			if len(notifier.notices) != 1 || notifier.notices[0].BookingID != b.ID {
				t.Errorf("notices %+v", notifier.notices)
			}
		})
	}
}

func TestCreateBookingSurvivesNotifierFailure(t *testing.T) {
	svc := NewBookingService(bookingRepo.NewMemoryBookingRepo(), &recordingEnqueuer{err: errors.New("redis down")}, nil)
	b, err := svc.CreateBooking(context.Background(), models.BookingRequest{Type: "hotel", ID: "goa_hotel_1"})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := svc.GetBooking(context.Background(), b.ID); err != nil {
		t.Errorf("booking not stored: %v", err)
	}
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(bookingRepo.NewMemoryBookingRepo(), nil, nil)
	b, err := svc.CreateBooking(ctx, models.BookingRequest{Type: "flight", ID: "flight_1"})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if err := svc.CancelBooking(ctx, b.ID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if err := svc.CancelBooking(ctx, b.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("second cancel: %v", err)
	}
	list, err := svc.ListBookings(ctx)
	if err != nil || len(list) != 0 {
		t.Errorf("list after cancel: %v, %v", list, err)
	}
}
