package payment

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"travelagent/models"
	"travelagent/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultCurrency = "INR"
	gatewayTimeout  = 10 * time.Second
)

// ErrNotConfigured is returned by a gateway whose credentials are missing.
var ErrNotConfigured = errors.New("payment gateway not configured")

func NewPaymentService(gateway Gateway, logger *zap.Logger) *DefaultPaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultPaymentService{Gateway: gateway, Logger: logger}
}

// CreateOrder opens a gateway order for amount major units; the gateway
// receives amount*100 minor units.
func (s *DefaultPaymentService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, utils.NewValidationError("amount", "Amount must be greater than zero")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	minor := int64(math.Round(req.Amount * 100))
	receipt := "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]

	notes := map[string]string{}
	if req.BookingType != "" {
		notes["booking_type"] = req.BookingType
	}
	if id, ok := req.Item["id"]; ok {
		if itemID, ok := id.(string); ok {
			notes["item_id"] = itemID
		}
	}

	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	order, err := s.Gateway.CreateOrder(ctx, minor, currency, receipt, notes)
	if err != nil {
		s.Logger.Error("Failed to create payment order", zap.String("gateway", s.Gateway.Name()), zap.Error(err))
		return nil, err
	}
	s.Logger.Info("Payment order created",
		zap.String("gateway", s.Gateway.Name()),
		zap.String("orderID", order.ID),
		zap.Int64("amount", order.Amount),
		zap.String("currency", order.Currency))

	return &models.OrderResponse{
		Order:         *order,
		OrderID:       order.ID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		Gateway:       s.Gateway.Name(),
		RazorpayKeyID: s.Gateway.PublicKey(),
	}, nil
}

func (s *DefaultPaymentService) VerifyPayment(ctx context.Context, v models.PaymentVerification) (*models.VerificationResult, error) {
	if strings.TrimSpace(v.PaymentID) == "" && strings.TrimSpace(v.PaymentIntentID) == "" {
		return nil, utils.NewValidationError("razorpay_payment_id", "Payment id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	res, err := s.Gateway.VerifyPayment(ctx, v)
	if err != nil {
		s.Logger.Warn("Payment verification failed", zap.String("gateway", s.Gateway.Name()), zap.Error(err))
		return nil, err
	}
	return res, nil
}

// HandleWebhook checks the signature of a gateway event and returns its
// type. Gateways without webhooks reject every call.
func (s *DefaultPaymentService) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (string, error) {
	verifier, ok := s.Gateway.(WebhookVerifier)
	if !ok {
		return "", utils.NewValidationError("webhook", "Webhooks are not supported by "+s.Gateway.Name())
	}
	eventType, err := verifier.VerifyWebhook(payload, signatureHeader)
	if err != nil {
		return "", err
	}
	s.Logger.Info("Payment webhook received", zap.String("gateway", s.Gateway.Name()), zap.String("event", eventType))
	return eventType, nil
}
