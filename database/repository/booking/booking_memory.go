package bookingRepo

import (
	"context"
	"sync"

	"travelagent/models"
	"travelagent/utils"
)

// MemoryBookingRepo keeps bookings for the lifetime of the process.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	lastID   int
	bookings []models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	booking.ID = r.lastID
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemoryBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *MemoryBookingRepo) GetByID(ctx context.Context, id int) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, utils.NewNotFoundError("Booking")
}

func (r *MemoryBookingRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError("Booking")
}
