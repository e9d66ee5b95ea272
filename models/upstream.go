package models

// AviationstackResponse is the body of GET /v1/flights. A denied request
// (bad key, exhausted quota, plan restriction) carries Error and no Data.
type AviationstackResponse struct {
	Data  []AviationstackFlight `json:"data"`
	Error *AviationstackError   `json:"error,omitempty"`
}

type AviationstackError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AviationstackFlight holds the subset of a flight record we map.
type AviationstackFlight struct {
	FlightDate string              `json:"flight_date"`
	Status     string              `json:"flight_status"`
	Departure  AviationstackPoint  `json:"departure"`
	Arrival    AviationstackPoint  `json:"arrival"`
	Airline    AviationstackEntity `json:"airline"`
	Flight     AviationstackNumber `json:"flight"`
}

type AviationstackPoint struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
}

type AviationstackEntity struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

type AviationstackNumber struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
}
