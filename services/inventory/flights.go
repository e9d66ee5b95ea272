package inventory

import (
	"fmt"
	"math/rand"
	"strings"

	"travelagent/models"
)

// Flights returns 6 to 10 synthetic flights sorted by price.
func (g *Generator) Flights(q models.FlightQuery) ([]models.FlightOffer, error) {
	if err := ValidateFlightQuery(q); err != nil {
		return nil, err
	}
	r := g.newRand()

	from := strings.TrimSpace(q.From)
	to := strings.TrimSpace(q.To)
	n := between(r, minFlightResults, maxFlightResults)

	flights := make([]models.FlightOffer, 0, n)
	for i := 0; i < n; i++ {
		f := flightOffer(r, from, to)
		f.ID = fmt.Sprintf("flight_%d", i+1)
		f.Date = q.Date
		flights = append(flights, f)
	}

	SortFlights(flights)
	return flights, nil
}

func flightOffer(r *rand.Rand, from, to string) models.FlightOffer {
	a := airlines[r.Intn(len(airlines))]
	band := flightTier.rangeFor(a.Name)
	amount := toINR(between(r, band.Min, band.Max))

	// Departures on the quarter hour between 05:00 and 22:45.
	depart := between(r, 5*4, 22*4+3) * 15
	minutes := between(r, 60, 14*60)
	arrive := (depart + minutes) % (24 * 60)

	return models.FlightOffer{
		Airline:      a.Name,
		FlightNumber: fmt.Sprintf("%s%d", a.Code, between(r, 100, 9999)),
		FromCity:     from,
		ToCity:       to,
		DepartTime:   clock(depart),
		ArriveTime:   clock(arrive),
		Duration:     FormatDuration(minutes),
		Stops:        stopsFor(r, minutes),
		Price:        FormatINR(amount, false),
		PriceAmount:  amount,
		Currency:     CurrencyINR,
		Rating:       rating(r),
		Amenities:    sample(r, flightAmenities, minFlightAmenity, maxFlightAmenity),
		Source:       models.SourceSynthetic,
	}
}

// stopsFor keeps short hops direct and lets long itineraries take up to two
// stops.
func stopsFor(r *rand.Rand, minutes int) int {
	switch {
	case minutes < 3*60:
		return 0
	case minutes < 8*60:
		return r.Intn(2)
	default:
		return r.Intn(3)
	}
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
