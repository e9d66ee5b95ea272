package search

import (
	"context"

	"travelagent/models"
	"travelagent/services/inventory"
)

// Domains served by the search façade.
const (
	DomainFlights   = "flights"
	DomainHotels    = "hotels"
	DomainTransport = "transport"
)

// SearchService validates queries and asks the configured source of each
// domain for offers.
type SearchService interface {
	SearchFlights(ctx context.Context, q models.FlightQuery) ([]models.FlightOffer, error)
	SearchHotels(ctx context.Context, q models.HotelQuery) ([]models.HotelOffer, error)
	SearchTransport(ctx context.Context, q models.TransportQuery) ([]models.TransportOffer, error)

	// Sample offers for the per-domain smoke test endpoints.
	SampleFlights(ctx context.Context) ([]models.FlightOffer, error)
	SampleHotels(ctx context.Context) ([]models.HotelOffer, error)
	SampleTransport(ctx context.Context) ([]models.TransportOffer, error)

	// Demo fixture lookups.
	GetFlight(id int) (*models.Flight, error)
	GetTransport(id int) (*models.Transport, error)
}

// DefaultSearchService holds one OfferSource per domain. Samples always
// come from Generator so smoke tests never reach an upstream API.
type DefaultSearchService struct {
	Flights   inventory.OfferSource[models.FlightQuery, models.FlightOffer]
	Hotels    inventory.OfferSource[models.HotelQuery, models.HotelOffer]
	Transport inventory.OfferSource[models.TransportQuery, models.TransportOffer]
	Generator *inventory.Generator
}
