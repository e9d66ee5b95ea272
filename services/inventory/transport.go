package inventory

import (
	"fmt"
	"math/rand"
	"strings"

	"travelagent/models"
)

// Transport returns 4 to 8 ground transport offers sorted by price. When a
// known type is requested, even positions use it and odd positions draw a
// random type; otherwise every position draws one.
func (g *Generator) Transport(q models.TransportQuery) ([]models.TransportOffer, error) {
	if err := ValidateTransportQuery(q); err != nil {
		return nil, err
	}
	r := g.newRand()

	requested := normalizeType(q.Type)
	pickup := strings.TrimSpace(q.Pickup)
	dropoff := strings.TrimSpace(q.Dropoff)

	n := between(r, minTransportResults, maxTransportResults)
	offers := make([]models.TransportOffer, 0, n)
	for i := 0; i < n; i++ {
		kind := requested
		if kind == "" || i%2 != 0 {
			kind = pick(r, transportTypes)
		}
		offer := transportOffer(r, kind, pickup, dropoff)
		offer.ID = fmt.Sprintf("transport_%d", i+1)
		offer.Date = q.Date
		offer.Time = q.Time
		offers = append(offers, offer)
	}

	SortTransport(offers)
	return offers, nil
}

func transportOffer(r *rand.Rand, kind, pickup, dropoff string) models.TransportOffer {
	provider := pick(r, transportProviders[kind])
	vehicle := pick(r, vehicleTypes[kind])
	band := transportPriceRange(kind, provider)
	amount := toINR(between(r, band.Min, band.Max))
	minutes := transportDurations[kind]

	return models.TransportOffer{
		Type:        kind,
		Provider:    provider,
		Pickup:      pickup,
		Dropoff:     dropoff,
		VehicleType: vehicle,
		Capacity:    vehicleCapacity[vehicle],
		Duration:    FormatDuration(between(r, minutes.Min, minutes.Max)),
		Price:       FormatINR(amount, false),
		PriceAmount: amount,
		Currency:    CurrencyINR,
		Rating:      rating(r),
		Features:    sample(r, transportFeatures, minTransportFeature, maxTransportFeature),
	}
}

func transportPriceRange(kind, provider string) priceRange {
	t := tier{
		Premium:      transportPremium,
		PremiumRange: transportPremiumRange,
		Budget:       transportBudget,
		BudgetRange:  transportBudgetRange,
		Default:      transportDefaultPrice[kind],
	}
	return t.rangeFor(provider)
}

// FormatDuration renders minutes as "45 mins" under an hour and "2h 05m"
// otherwise.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d mins", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
