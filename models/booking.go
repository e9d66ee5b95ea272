package models

import "time"

// Booking types.
const (
	BookingTypeFlight    = "flight"
	BookingTypeHotel     = "hotel"
	BookingTypeTransport = "transport"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID          int       `bson:"id" json:"id"`                                     // Auto-incrementing booking number
	UserID      int       `bson:"user_id" json:"user_id"`                           // Demo user who booked
	BookingType string    `bson:"booking_type" json:"booking_type"`                 // flight, hotel or transport
	ItemID      string    `bson:"item_id" json:"item_id"`                           // Offer id from the search response
	PaymentID   string    `bson:"payment_id,omitempty" json:"payment_id,omitempty"` // Gateway payment reference
	OrderID     string    `bson:"order_id,omitempty" json:"order_id,omitempty"`     // Gateway order reference
	Status      string    `bson:"status" json:"status"`                             // e.g. "confirmed"
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`                     // Timestamp when booking was created
}

// BookingRequest is the body of POST /api/bookings/. The frontend sends
// {type, id}; booking_type/item_id are accepted as well.
type BookingRequest struct {
	Type        string     `json:"type"`
	BookingType string     `json:"booking_type"`
	ID          FlexString `json:"id"`
	ItemID      FlexString `json:"item_id"`
	UserID      FlexInt    `json:"user_id"`
	PaymentID   string     `json:"payment_id"`
	OrderID     string     `json:"order_id"`
}

// BookingNotice is the payload of the booking confirmation task.
type BookingNotice struct {
	BookingID   int    `json:"booking_id"`
	UserID      int    `json:"user_id"`
	BookingType string `json:"booking_type"`
	ItemID      string `json:"item_id"`
	PaymentID   string `json:"payment_id,omitempty"`
}
