package bookingRepo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"travelagent/models"
	"travelagent/utils"
)

func TestMemoryBookingRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepo()

	for i := 0; i < 3; i++ {
		b := &models.Booking{BookingType: models.BookingTypeHotel, ItemID: "pune_hotel_1"}
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if b.ID != i+1 {
			t.Errorf("id %d, want %d", b.ID, i+1)
		}
	}

	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, 2); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("GetByID after delete: %v", err)
	}
	if err := repo.Delete(ctx, 2); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("second Delete: %v", err)
	}

	next := &models.Booking{BookingType: models.BookingTypeFlight, ItemID: "flight_1"}
	if err := repo.Create(ctx, next); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if next.ID != 4 {
		t.Errorf("id after delete %d, want 4", next.ID)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	ids := []int{}
	for _, b := range list {
		ids = append(ids, b.ID)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 3 || ids[2] != 4 {
		t.Errorf("ids %v, want [1 3 4]", ids)
	}
}

func TestMemoryBookingRepoConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &models.Booking{BookingType: models.BookingTypeTransport, ItemID: "transport_1"})
		}()
	}
	wg.Wait()

	list, _ := repo.List(ctx)
	seen := map[int]bool{}
	for _, b := range list {
		if seen[b.ID] {
			t.Fatalf("duplicate id %d", b.ID)
		}
		seen[b.ID] = true
	}
	if len(list) != 50 {
		t.Errorf("got %d bookings, want 50", len(list))
	}
}
