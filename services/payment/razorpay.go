package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"travelagent/models"
	"travelagent/utils"

	razorpay "github.com/razorpay/razorpay-go"
)

// orderCreator is the part of the Razorpay SDK used to open orders.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayGateway opens orders through the Razorpay Orders API and checks
// checkout signatures locally.
type RazorpayGateway struct {
	keyID     string
	keySecret string
	orders    orderCreator
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	g := &RazorpayGateway{keyID: keyID, keySecret: keySecret}
	if keyID != "" && keySecret != "" {
		client := razorpay.NewClient(keyID, keySecret)
		g.orders = client.Order
	}
	return g
}

func (g *RazorpayGateway) Name() string { return "razorpay" }

func (g *RazorpayGateway) PublicKey() string { return g.keyID }

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*models.PaymentOrder, error) {
	if g.orders == nil {
		return nil, fmt.Errorf("razorpay: %w", ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := g.orders.Create(data, nil)
	if err != nil {
		return nil, utils.NewGatewayError("Razorpay", err)
	}

	order := &models.PaymentOrder{
		ID:       stringField(body, "id"),
		Amount:   int64Field(body, "amount", amountMinor),
		Currency: stringField(body, "currency"),
		Receipt:  stringField(body, "receipt"),
		Status:   stringField(body, "status"),
	}
	if order.ID == "" {
		return nil, utils.NewGatewayError("Razorpay", fmt.Errorf("order response has no id"))
	}
	if order.Currency == "" {
		order.Currency = currency
	}
	return order, nil
}

// VerifyPayment checks the checkout signature, an HMAC-SHA256 of
// "order_id|payment_id" keyed with the API secret.
func (g *RazorpayGateway) VerifyPayment(ctx context.Context, v models.PaymentVerification) (*models.VerificationResult, error) {
	if g.keySecret == "" {
		return nil, fmt.Errorf("razorpay: %w", ErrNotConfigured)
	}
	if v.OrderID == "" || v.PaymentID == "" || v.Signature == "" {
		return nil, utils.NewValidationError("razorpay_signature", "Order id, payment id and signature are required")
	}
	expected := RazorpaySignature(g.keySecret, v.OrderID, v.PaymentID)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v.Signature))) {
		return nil, utils.ErrPaymentVerification
	}
	return &models.VerificationResult{Success: true, PaymentID: v.PaymentID, OrderID: v.OrderID}, nil
}

// RazorpaySignature returns the hex signature Razorpay checkout sends for a
// paid order.
func RazorpaySignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func int64Field(m map[string]interface{}, key string, fallback int64) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return fallback
}
