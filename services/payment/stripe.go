package payment

import (
	"context"
	"fmt"
	"strings"

	"travelagent/models"
	"travelagent/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway maps orders onto Stripe PaymentIntents.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	g := &StripeGateway{webhookSecret: webhookSecret}
	if secretKey != "" {
		g.api = client.New(secretKey, nil)
	}
	return g
}

func (g *StripeGateway) Name() string { return "stripe" }

// PublicKey is empty: Stripe clients confirm with the intent's client secret.
func (g *StripeGateway) PublicKey() string { return "" }

func (g *StripeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*models.PaymentOrder, error) {
	if g.api == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotConfigured)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(strings.ToLower(currency)),
	}
	params.Context = ctx
	params.AddMetadata("receipt", receipt)
	for k, v := range notes {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, utils.NewGatewayError("Stripe", err)
	}
	return &models.PaymentOrder{
		ID:           pi.ID,
		Amount:       pi.Amount,
		Currency:     strings.ToUpper(string(pi.Currency)),
		Receipt:      receipt,
		Status:       string(pi.Status),
		ClientSecret: pi.ClientSecret,
	}, nil
}

// VerifyPayment accepts a PaymentIntent only once Stripe reports it succeeded.
func (g *StripeGateway) VerifyPayment(ctx context.Context, v models.PaymentVerification) (*models.VerificationResult, error) {
	if g.api == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotConfigured)
	}
	id := v.PaymentIntentID
	if id == "" {
		id = v.PaymentID
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, utils.NewGatewayError("Stripe", err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("payment intent %s is %s: %w", pi.ID, pi.Status, utils.ErrPaymentVerification)
	}
	return &models.VerificationResult{Success: true, PaymentID: pi.ID, OrderID: pi.ID}, nil
}

// VerifyWebhook validates the Stripe-Signature header and returns the event type.
func (g *StripeGateway) VerifyWebhook(payload []byte, signatureHeader string) (string, error) {
	if g.webhookSecret == "" {
		return "", fmt.Errorf("stripe webhook: %w", ErrNotConfigured)
	}
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, utils.ErrPaymentVerification)
	}
	return string(event.Type), nil
}
