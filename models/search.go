package models

// FlightQuery is the body of POST /api/flights/search.
type FlightQuery struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Date       string  `json:"date"`
	Passengers FlexInt `json:"passengers"`
}

// HotelQuery is the body of POST /api/hotels/search.
type HotelQuery struct {
	Location string  `json:"location"`
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	Guests   FlexInt `json:"guests"`
	Rooms    FlexInt `json:"rooms"`
}

// TransportQuery is the body of POST /api/transport/search.
type TransportQuery struct {
	Pickup  string `json:"pickup"`
	Dropoff string `json:"dropoff"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Type    string `json:"type"`
}
