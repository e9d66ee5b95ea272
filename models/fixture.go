package models

// Flight is a static demo flight served by GET /api/flights/:id.
type Flight struct {
	ID         int     `json:"id"`
	Airline    string  `json:"airline"`
	FromCity   string  `json:"from_city"`
	ToCity     string  `json:"to_city"`
	DepartTime string  `json:"depart_time"`
	ArriveTime string  `json:"arrive_time"`
	Price      float64 `json:"price"`
	Stops      int     `json:"stops"`
}

// Transport is a static demo transfer served by GET /api/transport/:id.
type Transport struct {
	ID       int     `json:"id"`
	Type     string  `json:"type"`
	Provider string  `json:"provider"`
	Pickup   string  `json:"pickup"`
	Dropoff  string  `json:"dropoff"`
	Price    float64 `json:"price"`
}
