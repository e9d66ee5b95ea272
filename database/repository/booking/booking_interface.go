package bookingRepo

import (
	"context"

	"travelagent/models"
)

// BookingRepository defines methods for booking data access. Both
// implementations assign IDs from a monotonic counter, so a cancelled
// booking's ID is never reused.
type BookingRepository interface {
	// Create assigns the next ID and stores the booking.
	Create(ctx context.Context, booking *models.Booking) error
	// List returns every booking in creation order.
	List(ctx context.Context) ([]models.Booking, error)
	// GetByID returns the booking or a NotFoundError.
	GetByID(ctx context.Context, id int) (*models.Booking, error)
	// Delete removes the booking or returns a NotFoundError.
	Delete(ctx context.Context, id int) error
}
