package inventory

import (
	"sort"

	"travelagent/models"
)

// Sort keys are parsed from the display strings. Unparseable strings fall
// back to the numeric amount.

func SortFlights(offers []models.FlightOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return priceKey(offers[i].Price, offers[i].PriceAmount) < priceKey(offers[j].Price, offers[j].PriceAmount)
	})
}

func SortHotels(offers []models.HotelOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return priceKey(offers[i].PricePerNight, offers[i].PricePerNightAmount) <
			priceKey(offers[j].PricePerNight, offers[j].PricePerNightAmount)
	})
}

func SortTransport(offers []models.TransportOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return priceKey(offers[i].Price, offers[i].PriceAmount) < priceKey(offers[j].Price, offers[j].PriceAmount)
	})
}

func priceKey(display string, amount int) int {
	if n, err := ParsePrice(display); err == nil {
		return n
	}
	return amount
}
