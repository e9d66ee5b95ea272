package payment

import (
	"context"

	"travelagent/models"

	"go.uber.org/zap"
)

// Gateway is a payment provider able to open an order and confirm that it
// was paid.
type Gateway interface {
	Name() string
	// PublicKey is handed to the checkout script. Empty when the gateway has
	// no client-side key.
	PublicKey() string
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*models.PaymentOrder, error)
	VerifyPayment(ctx context.Context, v models.PaymentVerification) (*models.VerificationResult, error)
}

// WebhookVerifier is implemented by gateways that push signed events.
type WebhookVerifier interface {
	VerifyWebhook(payload []byte, signatureHeader string) (eventType string, err error)
}

// PaymentService defines the checkout operations exposed over HTTP.
type PaymentService interface {
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error)
	VerifyPayment(ctx context.Context, v models.PaymentVerification) (*models.VerificationResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (string, error)
}

// DefaultPaymentService validates checkout requests and delegates to Gateway.
type DefaultPaymentService struct {
	Gateway Gateway
	Logger  *zap.Logger
}
