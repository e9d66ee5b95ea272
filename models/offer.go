package models

// Offer sources.
const (
	SourceSynthetic     = "synthetic"
	SourceAviationstack = "aviationstack"
)

// FlightOffer is one flight search result. Price is the display string
// ("₹24000"); PriceAmount carries the same value as an integer.
type FlightOffer struct {
	ID           string   `json:"id"`
	Airline      string   `json:"airline"`
	FlightNumber string   `json:"flight_number"`
	FromCity     string   `json:"from_city"`
	ToCity       string   `json:"to_city"`
	Date         string   `json:"date,omitempty"`
	DepartTime   string   `json:"depart_time"`
	ArriveTime   string   `json:"arrive_time"`
	Duration     string   `json:"duration"`
	Stops        int      `json:"stops"`
	Price        string   `json:"price"`
	PriceAmount  int      `json:"price_amount"`
	Currency     string   `json:"currency"`
	Rating       float64  `json:"rating,omitempty"`
	Amenities    []string `json:"amenities"`
	Source       string   `json:"source"`
}

// HotelOffer is one hotel search result. PricePerNight and TotalPrice are
// display strings ("₹ 9600").
type HotelOffer struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Location            string   `json:"location"`
	Address             string   `json:"address"`
	CheckIn             string   `json:"check_in,omitempty"`
	CheckOut            string   `json:"check_out,omitempty"`
	PricePerNight       string   `json:"price_per_night"`
	TotalPrice          string   `json:"total_price"`
	PricePerNightAmount int      `json:"price_per_night_amount"`
	TotalPriceAmount    int      `json:"total_price_amount"`
	Currency            string   `json:"currency"`
	Rating              float64  `json:"rating"`
	Stars               int      `json:"stars"`
	Amenities           []string `json:"amenities"`
	Image               string   `json:"image"`
}

// TransportOffer is one ground transport search result.
type TransportOffer struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Provider    string   `json:"provider"`
	Pickup      string   `json:"pickup"`
	Dropoff     string   `json:"dropoff"`
	Date        string   `json:"date,omitempty"`
	Time        string   `json:"time,omitempty"`
	VehicleType string   `json:"vehicle_type"`
	Capacity    int      `json:"capacity"`
	Duration    string   `json:"duration"`
	Price       string   `json:"price"`
	PriceAmount int      `json:"price_amount"`
	Currency    string   `json:"currency"`
	Rating      float64  `json:"rating"`
	Features    []string `json:"features"`
}
