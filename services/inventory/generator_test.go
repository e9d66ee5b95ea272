package inventory

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"travelagent/models"
	"travelagent/utils"
)

func seeded(seed int64) Option {
	return WithRandSource(func() *rand.Rand {
		return rand.New(rand.NewSource(seed))
	})
}

func TestCuratedListsFillFirstPage(t *testing.T) {
	for city, names := range cityHotels {
		if len(names) < minHotelResults {
			t.Errorf("%s: %d curated hotels, want at least %d", city, len(names), minHotelResults)
		}
	}
}

func TestHotels(t *testing.T) {
	tests := []struct {
		name     string
		query    models.HotelQuery
		curated  bool
		idPrefix string
		wantErr  bool
	}{
		{name: "curated city", query: models.HotelQuery{Location: "Pune", Guests: 2, Rooms: 1}, curated: true, idPrefix: "pune_hotel_"},
		{name: "curated city padded and mixed case", query: models.HotelQuery{Location: "  NEW York "}, curated: true, idPrefix: "new_york_hotel_"},
		{name: "unknown city", query: models.HotelQuery{Location: "Nairobi", Guests: 3, Rooms: 2}, idPrefix: "nairobi_generic_"},
		{name: "largest party", query: models.HotelQuery{Location: "Nairobi", Guests: MaxHotelGuests, Rooms: MaxHotelRooms}, idPrefix: "nairobi_generic_"},
		{name: "party large enough to overflow the total", query: models.HotelQuery{Location: "Nairobi", Guests: 1 << 32, Rooms: 1 << 32}, wantErr: true},
		{name: "too many guests", query: models.HotelQuery{Location: "Goa", Guests: MaxHotelGuests + 1}, wantErr: true},
		{name: "too many rooms", query: models.HotelQuery{Location: "Goa", Rooms: MaxHotelRooms + 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 25; seed++ {
				g := NewGenerator(seeded(seed))
				hotels, err := g.Hotels(tt.query)
				if tt.wantErr {
					var ve *utils.ValidationError
					if !errors.As(err, &ve) {
						t.Fatalf("got %v, want ValidationError", err)
					}
					return
				}
				if err != nil {
					t.Fatalf("Hotels: %v", err)
				}

				want := minHotelResults
				curated := CuratedHotels(tt.query.Location)
				if len(curated) > want {
					want = len(curated)
				}
				if len(hotels) != want {
					t.Fatalf("got %d hotels, want %d", len(hotels), want)
				}

				guests, rooms := orOne(int(tt.query.Guests)), orOne(int(tt.query.Rooms))
				prev := -1
				for _, h := range hotels {
					if !strings.HasPrefix(h.ID, tt.idPrefix) {
						t.Errorf("id %q lacks prefix %q", h.ID, tt.idPrefix)
					}
					nightly, err := ParsePrice(h.PricePerNight)
					if err != nil {
						t.Fatalf("ParsePrice(%q): %v", h.PricePerNight, err)
					}
					if nightly < prev {
						t.Errorf("not sorted: %d after %d", nightly, prev)
					}
					prev = nightly
					if FormatINR(nightly, true) != h.PricePerNight {
						t.Errorf("round trip of %q gave %q", h.PricePerNight, FormatINR(nightly, true))
					}
					total, err := ParsePrice(h.TotalPrice)
					if err != nil {
						t.Fatalf("ParsePrice(%q): %v", h.TotalPrice, err)
					}
					if total != nightly*guests*rooms {
						t.Errorf("total %d, want %d", total, nightly*guests*rooms)
					}
					if h.PricePerNightAmount != nightly || h.TotalPriceAmount != total {
						t.Errorf("amounts %d/%d disagree with %q/%q", h.PricePerNightAmount, h.TotalPriceAmount, h.PricePerNight, h.TotalPrice)
					}
					if nightly < 60*USDToINR || nightly > 400*USDToINR {
						t.Errorf("nightly price %d outside every hotel tier", nightly)
					}
					if h.Rating < 3.5 || h.Rating > 5.0 {
						t.Errorf("rating %v out of range", h.Rating)
					}
					if h.Stars < 3 || h.Stars > 5 {
						t.Errorf("stars %d out of range", h.Stars)
					}
					checkSubset(t, h.Amenities, hotelAmenities, minHotelAmenity, maxHotelAmenity)
					if !strings.HasSuffix(h.Address, ", "+strings.TrimSpace(tt.query.Location)) {
						t.Errorf("address %q does not end with location", h.Address)
					}
				}

				if tt.curated {
					inCurated := map[string]bool{}
					for _, n := range curated {
						inCurated[n] = true
					}
					for _, h := range hotels[:len(curated)] {
						if !inCurated[h.Name] {
							t.Errorf("%q is not a curated hotel", h.Name)
						}
					}
				}
			}
		})
	}
}

func TestGenericHotelTiers(t *testing.T) {
	tests := []struct {
		name string
		want priceRange
	}{
		{"Marriott Resort", priceRange{150, 400}},
		{"Hilton Inn", priceRange{150, 400}},
		{"Best Western Lodge", priceRange{60, 150}},
		{"Comfort Inn Suites", priceRange{60, 150}},
		{"Hyatt Tower", priceRange{80, 300}},
	}
	for _, tt := range tests {
		if got := hotelTier.rangeFor(tt.name); got != tt.want {
			t.Errorf("rangeFor(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestTransportScenario(t *testing.T) {
	pricePattern := regexp.MustCompile(`^₹\d+$`)
	q := models.TransportQuery{Pickup: "Airport", Dropoff: "Hotel", Type: "taxi"}

	for seed := int64(1); seed <= 50; seed++ {
		g := NewGenerator(seeded(seed))
		offers, err := g.Transport(q)
		if err != nil {
			t.Fatalf("Transport: %v", err)
		}
		if len(offers) < minTransportResults || len(offers) > maxTransportResults {
			t.Fatalf("got %d offers, want %d..%d", len(offers), minTransportResults, maxTransportResults)
		}

		prev := -1
		for _, o := range offers {
			if !pricePattern.MatchString(o.Price) {
				t.Errorf("price %q does not match %s", o.Price, pricePattern)
			}
			p, err := ParsePrice(o.Price)
			if err != nil {
				t.Fatalf("ParsePrice(%q): %v", o.Price, err)
			}
			if p < prev {
				t.Errorf("not sorted: %d after %d", p, prev)
			}
			prev = p
			if _, ok := transportProviders[o.Type]; !ok {
				t.Errorf("unknown type %q", o.Type)
			}
			if !contains(transportProviders[o.Type], o.Provider) {
				t.Errorf("provider %q does not serve %q", o.Provider, o.Type)
			}
			if o.Capacity != vehicleCapacity[o.VehicleType] {
				t.Errorf("capacity %d for %q", o.Capacity, o.VehicleType)
			}
			band := transportPriceRange(o.Type, o.Provider)
			if p < band.Min*USDToINR || p > band.Max*USDToINR {
				t.Errorf("%s price %d outside %+v", o.Provider, p, band)
			}
			checkSubset(t, o.Features, transportFeatures, minTransportFeature, maxTransportFeature)
		}

		// Even generation slots always carry the requested type.
		for _, o := range offers {
			var idx int
			if _, err := fmt.Sscanf(o.ID, "transport_%d", &idx); err != nil {
				t.Fatalf("id %q: %v", o.ID, err)
			}
			if (idx-1)%2 == 0 && o.Type != "taxi" {
				t.Errorf("%s has type %q, want taxi", o.ID, o.Type)
			}
		}
	}
}

func TestTransportTiers(t *testing.T) {
	tests := []struct {
		kind, provider string
		want           priceRange
	}{
		{"cab", "Uber Premier", transportPremiumRange},
		{"bus", "Neeta Volvo", transportPremiumRange},
		{"rental", "Myles Luxury", transportPremiumRange},
		{"cab", "Ola Mini", transportBudgetRange},
		{"auto", "Rapido Auto", transportBudgetRange},
		{"train", "Metro Rail", transportBudgetRange},
		{"taxi", "Meru Cabs", priceRange{6, 15}},
		{"train", "Indian Railways", priceRange{2, 8}},
	}
	for _, tt := range tests {
		if got := transportPriceRange(tt.kind, tt.provider); got != tt.want {
			t.Errorf("%s/%s: got %+v, want %+v", tt.kind, tt.provider, got, tt.want)
		}
	}
}

func TestFlights(t *testing.T) {
	q := models.FlightQuery{From: "BOM", To: "DEL", Date: "2025-03-01"}
	for seed := int64(1); seed <= 25; seed++ {
		flights, err := NewGenerator(seeded(seed)).Flights(q)
		if err != nil {
			t.Fatalf("Flights: %v", err)
		}
		if len(flights) < minFlightResults || len(flights) > maxFlightResults {
			t.Fatalf("got %d flights", len(flights))
		}
		prev := -1
		for _, f := range flights {
			p, err := ParsePrice(f.Price)
			if err != nil {
				t.Fatalf("ParsePrice(%q): %v", f.Price, err)
			}
			if p < prev {
				t.Errorf("not sorted: %d after %d", p, prev)
			}
			prev = p
			band := flightTier.rangeFor(f.Airline)
			if p < band.Min*USDToINR || p > band.Max*USDToINR {
				t.Errorf("%s price %d outside %+v", f.Airline, p, band)
			}
			if f.FromCity != "BOM" || f.ToCity != "DEL" || f.Date != "2025-03-01" {
				t.Errorf("route not carried: %+v", f)
			}
			if f.Source != models.SourceSynthetic {
				t.Errorf("source %q", f.Source)
			}
			checkSubset(t, f.Amenities, flightAmenities, minFlightAmenity, maxFlightAmenity)
		}
	}
}

func TestValidationRunsBeforeRandomness(t *testing.T) {
	g := NewGenerator(WithRandSource(func() *rand.Rand {
		t.Fatal("random source used for an invalid query")
		return nil
	}))

	var verr *utils.ValidationError
	if _, err := g.Hotels(models.HotelQuery{Location: "   "}); !errors.As(err, &verr) {
		t.Errorf("Hotels: got %v, want ValidationError", err)
	}
	if _, err := g.Transport(models.TransportQuery{Pickup: "Airport"}); !errors.As(err, &verr) {
		t.Errorf("Transport: got %v, want ValidationError", err)
	}
	if _, err := g.Flights(models.FlightQuery{To: "DEL"}); !errors.As(err, &verr) {
		t.Errorf("Flights: got %v, want ValidationError", err)
	}
}

func TestPriceRoundTrip(t *testing.T) {
	for _, amount := range []int{0, 160, 9600, 36000, 1234567} {
		for _, spaced := range []bool{true, false} {
			s := FormatINR(amount, spaced)
			got, err := ParsePrice(s)
			if err != nil {
				t.Fatalf("ParsePrice(%q): %v", s, err)
			}
			if got != amount || FormatINR(got, spaced) != s {
				t.Errorf("round trip of %q gave %d", s, got)
			}
		}
	}
	if n, err := ParsePrice("₹ 1,20,000"); err != nil || n != 120000 {
		t.Errorf("grouped price parsed as %d, %v", n, err)
	}
	if _, err := ParsePrice("free"); err == nil {
		t.Error("expected error for non-numeric price")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{10: "10 mins", 59: "59 mins", 60: "1h 00m", 125: "2h 05m"}
	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestPlaceholderImage(t *testing.T) {
	got := PlaceholderImages{}.HotelImage("The Ritz London")
	want := "https://via.placeholder.com/300x200/2563eb/ffffff?text=The+Ritz+London"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if s := Slug("Claridge's & Co, London"); s != "claridge-s-co-london" {
		t.Errorf("Slug = %q", s)
	}
}

func checkSubset(t *testing.T, got, pool []string, min, max int) {
	t.Helper()
	if len(got) < min || len(got) > max {
		t.Errorf("subset size %d outside [%d,%d]", len(got), min, max)
	}
	seen := map[string]bool{}
	for _, v := range got {
		if seen[v] {
			t.Errorf("duplicate %q in %v", v, got)
		}
		seen[v] = true
		if !contains(pool, v) {
			t.Errorf("%q not in pool", v)
		}
	}
}

func contains(pool []string, v string) bool {
	for _, p := range pool {
		if p == v {
			return true
		}
	}
	return false
}
