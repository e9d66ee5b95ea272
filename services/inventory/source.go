package inventory

import (
	"context"
	"errors"

	"travelagent/models"
	"travelagent/utils"

	"go.uber.org/zap"
)

// ErrSourceUnavailable marks faults that mean "this source cannot answer"
// rather than "the call failed", such as a missing API key. FallbackSource
// treats them like an empty result.
var ErrSourceUnavailable = errors.New("offer source unavailable")

// Result is a successful answer from an OfferSource. An empty Offers slice
// is a valid answer, distinct from an error.
type Result[O any] struct {
	Offers []O
	Source string
}

func (r Result[O]) Empty() bool {
	return len(r.Offers) == 0
}

// OfferSource produces offers of type O for queries of type Q.
type OfferSource[Q any, O any] interface {
	Name() string
	Offers(ctx context.Context, q Q) (Result[O], error)
}

// SyntheticSource adapts a Generator method to OfferSource.
type SyntheticSource[Q any, O any] struct {
	generate func(Q) ([]O, error)
}

func (s SyntheticSource[Q, O]) Name() string {
	return models.SourceSynthetic
}

func (s SyntheticSource[Q, O]) Offers(_ context.Context, q Q) (Result[O], error) {
	offers, err := s.generate(q)
	if err != nil {
		return Result[O]{}, err
	}
	return Result[O]{Offers: offers, Source: models.SourceSynthetic}, nil
}

func SyntheticFlights(g *Generator) SyntheticSource[models.FlightQuery, models.FlightOffer] {
	return SyntheticSource[models.FlightQuery, models.FlightOffer]{generate: g.Flights}
}

func SyntheticHotels(g *Generator) SyntheticSource[models.HotelQuery, models.HotelOffer] {
	return SyntheticSource[models.HotelQuery, models.HotelOffer]{generate: g.Hotels}
}

func SyntheticTransport(g *Generator) SyntheticSource[models.TransportQuery, models.TransportOffer] {
	return SyntheticSource[models.TransportQuery, models.TransportOffer]{generate: g.Transport}
}

// FlightFeed fetches raw flight records from an upstream API. It returns
// an empty slice, not an error, when upstream answers without data.
type FlightFeed interface {
	FetchFlights(ctx context.Context, q models.FlightQuery) ([]models.AviationstackFlight, error)
}

// ExternalFlightSource serves normalized upstream flights.
type ExternalFlightSource struct {
	Feed FlightFeed
}

func (s ExternalFlightSource) Name() string {
	return models.SourceAviationstack
}

func (s ExternalFlightSource) Offers(ctx context.Context, q models.FlightQuery) (Result[models.FlightOffer], error) {
	records, err := s.Feed.FetchFlights(ctx, q)
	if err != nil {
		if errors.Is(err, ErrSourceUnavailable) {
			return Result[models.FlightOffer]{}, err
		}
		return Result[models.FlightOffer]{}, utils.NewGatewayError("Flight data", err)
	}
	offers := NormalizeFlights(records)
	SortFlights(offers)
	return Result[models.FlightOffer]{Offers: offers, Source: models.SourceAviationstack}, nil
}

// FallbackSource asks Primary first and Fallback only when Primary answers
// empty or reports ErrSourceUnavailable. Every other error is returned and
// Fallback is not consulted.
type FallbackSource[Q any, O any] struct {
	Primary  OfferSource[Q, O]
	Fallback OfferSource[Q, O]
	Logger   *zap.Logger
}

func (f FallbackSource[Q, O]) Name() string {
	return f.Primary.Name() + "+" + f.Fallback.Name()
}

func (f FallbackSource[Q, O]) Offers(ctx context.Context, q Q) (Result[O], error) {
	res, err := f.Primary.Offers(ctx, q)
	switch {
	case err == nil && !res.Empty():
		return res, nil
	case err != nil && !errors.Is(err, ErrSourceUnavailable):
		return Result[O]{}, err
	}

	if f.Logger != nil {
		reason := "empty result"
		if err != nil {
			reason = err.Error()
		}
		f.Logger.Info("Falling back to secondary offer source",
			zap.String("primary", f.Primary.Name()),
			zap.String("fallback", f.Fallback.Name()),
			zap.String("reason", reason))
	}
	return f.Fallback.Offers(ctx, q)
}
