package search

import (
	"context"
	"errors"

	"travelagent/models"
	"travelagent/services/inventory"
	"travelagent/utils"

	"go.uber.org/zap"
)

const sampleSize = 3

// NewSearchService wires the generator for every domain. When feed is
// non-nil flights are served from it first, falling back to generated
// offers on an empty answer.
func NewSearchService(gen *inventory.Generator, feed inventory.FlightFeed) *DefaultSearchService {
	var flights inventory.OfferSource[models.FlightQuery, models.FlightOffer] = inventory.SyntheticFlights(gen)
	if feed != nil {
		flights = inventory.FallbackSource[models.FlightQuery, models.FlightOffer]{
			Primary:  inventory.ExternalFlightSource{Feed: feed},
			Fallback: inventory.SyntheticFlights(gen),
			Logger:   utils.GetLogger(),
		}
	}
	return &DefaultSearchService{
		Flights:   flights,
		Hotels:    inventory.SyntheticHotels(gen),
		Transport: inventory.SyntheticTransport(gen),
		Generator: gen,
	}
}

func (s *DefaultSearchService) SearchFlights(ctx context.Context, q models.FlightQuery) ([]models.FlightOffer, error) {
	if err := inventory.ValidateFlightQuery(q); err != nil {
		return nil, err
	}
	res, err := s.Flights.Offers(ctx, q)
	if err != nil {
		return nil, record(DomainFlights, err)
	}
	offersServed.WithLabelValues(DomainFlights, res.Source).Add(float64(len(res.Offers)))
	return res.Offers, nil
}

func (s *DefaultSearchService) SearchHotels(ctx context.Context, q models.HotelQuery) ([]models.HotelOffer, error) {
	if err := inventory.ValidateHotelQuery(q); err != nil {
		return nil, err
	}
	res, err := s.Hotels.Offers(ctx, q)
	if err != nil {
		return nil, record(DomainHotels, err)
	}
	offersServed.WithLabelValues(DomainHotels, res.Source).Add(float64(len(res.Offers)))
	return res.Offers, nil
}

func (s *DefaultSearchService) SearchTransport(ctx context.Context, q models.TransportQuery) ([]models.TransportOffer, error) {
	if err := inventory.ValidateTransportQuery(q); err != nil {
		return nil, err
	}
	res, err := s.Transport.Offers(ctx, q)
	if err != nil {
		return nil, record(DomainTransport, err)
	}
	offersServed.WithLabelValues(DomainTransport, res.Source).Add(float64(len(res.Offers)))
	return res.Offers, nil
}

func (s *DefaultSearchService) SampleFlights(ctx context.Context) ([]models.FlightOffer, error) {
	offers, err := s.Generator.Flights(models.FlightQuery{From: "BOM", To: "DEL"})
	return firstN(offers, sampleSize), err
}

func (s *DefaultSearchService) SampleHotels(ctx context.Context) ([]models.HotelOffer, error) {
	offers, err := s.Generator.Hotels(models.HotelQuery{Location: "Mumbai", Guests: 2, Rooms: 1})
	return firstN(offers, sampleSize), err
}

func (s *DefaultSearchService) SampleTransport(ctx context.Context) ([]models.TransportOffer, error) {
	offers, err := s.Generator.Transport(models.TransportQuery{Pickup: "Airport", Dropoff: "City Center", Type: "taxi"})
	return firstN(offers, sampleSize), err
}

func (s *DefaultSearchService) GetFlight(id int) (*models.Flight, error) {
	return findFlight(id)
}

func (s *DefaultSearchService) GetTransport(id int) (*models.Transport, error) {
	return findTransport(id)
}

// record counts and logs a failed search before handing the error back.
func record(domain string, err error) error {
	kind := "internal"
	var gw *utils.GatewayError
	if errors.As(err, &gw) {
		kind = "gateway"
	}
	searchFailures.WithLabelValues(domain, kind).Inc()
	utils.GetLogger().Error("Search failed", zap.String("domain", domain), zap.String("kind", kind), zap.Error(err))
	return err
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
