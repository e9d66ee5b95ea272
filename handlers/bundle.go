// File: travelagent/handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Search  *SearchHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	AI      *AIHandler
	User    *UserHandler
	Uber    *UberHandler
	Docs    *DocsHandler
	Health  *HealthHandler
}
