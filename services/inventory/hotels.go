package inventory

import (
	"fmt"
	"math/rand"
	"strings"

	"travelagent/models"
)

// Hotels returns curated offers for a known city followed by generic
// chain+type offers until there are at least ten, sorted by nightly price.
func (g *Generator) Hotels(q models.HotelQuery) ([]models.HotelOffer, error) {
	if err := ValidateHotelQuery(q); err != nil {
		return nil, err
	}
	r := g.newRand()

	location := strings.TrimSpace(q.Location)
	cityKey := strings.ToLower(location)
	idPrefix := strings.ReplaceAll(cityKey, " ", "_")
	guests := orOne(int(q.Guests))
	rooms := orOne(int(q.Rooms))

	curated := cityHotels[cityKey]
	target := len(curated)
	if target < minHotelResults {
		target = minHotelResults
	}

	hotels := make([]models.HotelOffer, 0, target)
	for i, name := range curated {
		base := between(r, curatedHotelPrice.Min, curatedHotelPrice.Max)
		h := g.hotel(r, name, location, base, guests, rooms, curatedStreets)
		h.ID = fmt.Sprintf("%s_hotel_%d", idPrefix, i+1)
		hotels = append(hotels, h)
	}
	for len(hotels) < target {
		name := pick(r, hotelChains) + " " + pick(r, hotelTypes)
		band := hotelTier.rangeFor(name)
		base := between(r, band.Min, band.Max)
		h := g.hotel(r, name, location, base, guests, rooms, genericStreets)
		h.ID = fmt.Sprintf("%s_generic_%d", idPrefix, len(hotels)+1)
		hotels = append(hotels, h)
	}

	for i := range hotels {
		hotels[i].CheckIn = q.CheckIn
		hotels[i].CheckOut = q.CheckOut
	}
	SortHotels(hotels)
	return hotels, nil
}

func (g *Generator) hotel(r *rand.Rand, name, location string, base, guests, rooms int, streets []string) models.HotelOffer {
	nightly := toINR(base)
	total := toINR(base * guests * rooms)
	return models.HotelOffer{
		Name:                name,
		Location:            location,
		Address:             fmt.Sprintf("%d %s, %s", between(r, 100, 999), pick(r, streets), location),
		PricePerNight:       FormatINR(nightly, true),
		TotalPrice:          FormatINR(total, true),
		PricePerNightAmount: nightly,
		TotalPriceAmount:    total,
		Currency:            CurrencyINR,
		Rating:              rating(r),
		Amenities:           sample(r, hotelAmenities, minHotelAmenity, maxHotelAmenity),
		Stars:               between(r, 3, 5),
		Image:               g.images.HotelImage(name),
	}
}

// CuratedHotels returns the curated names for location, matched
// case-insensitively after trimming.
func CuratedHotels(location string) []string {
	names := cityHotels[strings.ToLower(strings.TrimSpace(location))]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func orOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
