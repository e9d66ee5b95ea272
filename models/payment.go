package models

// OrderRequest is the body of POST /api/payments/create-order.
type OrderRequest struct {
	BookingType string                 `json:"booking_type"`
	Item        map[string]interface{} `json:"item"`
	Amount      float64                `json:"amount"`
	Currency    string                 `json:"currency"`
}

// PaymentOrder is a gateway order. Amount is in minor units (paise).
type PaymentOrder struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Receipt      string `json:"receipt,omitempty"`
	Status       string `json:"status,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// OrderResponse is returned to the checkout script.
type OrderResponse struct {
	Order         PaymentOrder `json:"order"`
	OrderID       string       `json:"order_id"`
	Amount        int64        `json:"amount"`
	Currency      string       `json:"currency"`
	Gateway       string       `json:"gateway"`
	RazorpayKeyID string       `json:"razorpay_key_id,omitempty"`
}

// PaymentVerification is the checkout callback payload. Razorpay checkout
// fills the razorpay_* fields; Stripe clients send payment_intent_id.
type PaymentVerification struct {
	OrderID         string `json:"razorpay_order_id"`
	PaymentID       string `json:"razorpay_payment_id"`
	Signature       string `json:"razorpay_signature"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
}

// VerificationResult is returned after a successful verification.
type VerificationResult struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
}
