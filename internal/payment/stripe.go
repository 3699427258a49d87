package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/spec-kit/bistro-service/internal/config"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// StripeGateway implements Gateway against the Stripe API.
type StripeGateway struct {
	api     *client.API
	timeout time.Duration
}

// NewStripeGateway builds the gateway from config.
func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := client.New(cfg.SecretKey, nil)
	return &StripeGateway{api: api, timeout: cfg.Timeout()}
}

// CreatePaymentIntent creates a card payment intent and returns its client
// secret. Any gateway failure, including a timeout, maps to
// EXTERNAL_SERVICE_ERROR; callers must not retry blindly.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, price decimal.Decimal, currency string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// Stripe bills in the currency's smallest unit.
	amount := price.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", apperrors.NewExternalServiceError("payment gateway unavailable", err)
	}
	return intent.ClientSecret, nil
}
