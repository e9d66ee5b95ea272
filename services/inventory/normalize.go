package inventory

import (
	"fmt"
	"strings"
	"time"

	"travelagent/models"
)

// NormalizeFlights maps upstream records onto FlightOffer. Fields the
// upstream payload lacks become NotAvailable and the price is the fixed
// placeholder, since upstream carries no fares. Records with neither an
// airline name nor a flight number are skipped.
func NormalizeFlights(records []models.AviationstackFlight) []models.FlightOffer {
	offers := make([]models.FlightOffer, 0, len(records))
	for _, rec := range records {
		number := firstNonEmpty(rec.Flight.IATA, rec.Flight.Number)
		if strings.TrimSpace(rec.Airline.Name) == "" && number == "" {
			continue
		}
		offers = append(offers, models.FlightOffer{
			ID:           fmt.Sprintf("flight_%d", len(offers)+1),
			Airline:      orNA(rec.Airline.Name),
			FlightNumber: orNA(number),
			FromCity:     orNA(firstNonEmpty(rec.Departure.IATA, rec.Departure.Airport)),
			ToCity:       orNA(firstNonEmpty(rec.Arrival.IATA, rec.Arrival.Airport)),
			Date:         rec.FlightDate,
			DepartTime:   scheduledClock(rec.Departure.Scheduled),
			ArriveTime:   scheduledClock(rec.Arrival.Scheduled),
			Duration:     NotAvailable,
			Price:        FormatINR(PlaceholderFlightPrice, false),
			PriceAmount:  PlaceholderFlightPrice,
			Currency:     CurrencyINR,
			Amenities:    []string{},
			Source:       models.SourceAviationstack,
		})
	}
	return offers
}

// scheduledClock extracts HH:MM from an RFC 3339 timestamp.
func scheduledClock(ts string) string {
	if ts == "" {
		return NotAvailable
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return NotAvailable
	}
	return t.Format("15:04")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}
