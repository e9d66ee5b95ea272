package search

import (
	"travelagent/models"
	"travelagent/utils"
)

// Static demo records for the lookup endpoints. They are unrelated to
// search results.
var demoFlights = []models.Flight{
	{ID: 1, Airline: "Delta", FromCity: "NYC", ToCity: "LAX", DepartTime: "10:00", ArriveTime: "13:00", Price: 300, Stops: 0},
	{ID: 2, Airline: "United", FromCity: "NYC", ToCity: "SFO", DepartTime: "11:00", ArriveTime: "14:30", Price: 350, Stops: 1},
}

var demoTransport = []models.Transport{
	{ID: 1, Type: "taxi", Provider: "Yellow Cab", Pickup: "JFK", Dropoff: "Manhattan", Price: 50},
	{ID: 2, Type: "uber", Provider: "Uber", Pickup: "LAX", Dropoff: "Santa Monica", Price: 40},
}

func findFlight(id int) (*models.Flight, error) {
	for i := range demoFlights {
		if demoFlights[i].ID == id {
			f := demoFlights[i]
			return &f, nil
		}
	}
	return nil, utils.NewNotFoundError("Flight")
}

func findTransport(id int) (*models.Transport, error) {
	for i := range demoTransport {
		if demoTransport[i].ID == id {
			t := demoTransport[i]
			return &t, nil
		}
	}
	return nil, utils.NewNotFoundError("Transport")
}
