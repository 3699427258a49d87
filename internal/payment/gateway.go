package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Gateway is the narrow payment collaborator contract: create an intent for
// an amount and currency, get back a client-usable secret. Nothing else is
// assumed about the provider.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, price decimal.Decimal, currency string) (string, error)
}
