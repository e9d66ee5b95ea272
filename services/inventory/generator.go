package inventory

import (
	"fmt"
	"math/rand"
	"strings"

	"travelagent/models"
	"travelagent/utils"
)

// Generator fabricates search offers from the static tables. It holds no
// mutable state; randomness comes from a fresh *rand.Rand per call.
type Generator struct {
	newRand func() *rand.Rand
	images  ImageURLs
}

type Option func(*Generator)

// WithRandSource replaces the per-call random source. Tests use it to fix
// seeds or to assert that no draw happens.
func WithRandSource(fn func() *rand.Rand) Option {
	return func(g *Generator) {
		g.newRand = fn
	}
}

// WithImages sets how hotel image URLs are built.
func WithImages(images ImageURLs) Option {
	return func(g *Generator) {
		g.images = images
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		newRand: NewRand,
		images:  PlaceholderImages{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func ValidateFlightQuery(q models.FlightQuery) error {
	if strings.TrimSpace(q.From) == "" || strings.TrimSpace(q.To) == "" {
		return utils.NewValidationError("from", "Both 'from' and 'to' are required")
	}
	return nil
}

func ValidateHotelQuery(q models.HotelQuery) error {
	if strings.TrimSpace(q.Location) == "" {
		return utils.NewValidationError("location", "Location is required")
	}
	if q.Guests < 0 || q.Rooms < 0 {
		return utils.NewValidationError("guests", "Guests and rooms must not be negative")
	}
	if q.Guests > MaxHotelGuests {
		return utils.NewValidationError("guests", fmt.Sprintf("At most %d guests per search", MaxHotelGuests))
	}
	if q.Rooms > MaxHotelRooms {
		return utils.NewValidationError("rooms", fmt.Sprintf("At most %d rooms per search", MaxHotelRooms))
	}
	return nil
}

func ValidateTransportQuery(q models.TransportQuery) error {
	if strings.TrimSpace(q.Pickup) == "" || strings.TrimSpace(q.Dropoff) == "" {
		return utils.NewValidationError("pickup", "Both pickup and dropoff locations are required")
	}
	return nil
}

// TransportTypes returns the supported transport types.
func TransportTypes() []string {
	out := make([]string, len(transportTypes))
	copy(out, transportTypes)
	return out
}

// normalizeType returns the known type named by t, or "" when t is empty or
// unknown.
func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if _, ok := transportProviders[t]; !ok {
		return ""
	}
	return t
}
