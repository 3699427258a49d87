package dto

import "github.com/shopspring/decimal"

// PaymentIntentRequest begins a gateway payment.
type PaymentIntentRequest struct {
	Price decimal.Decimal `json:"price"`
}

// PaymentIntentResponse returns the client-side secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// FinalizeCheckoutRequest records a gateway-confirmed payment. The owner is
// taken from the validated credential, not from this payload.
type FinalizeCheckoutRequest struct {
	Price          decimal.Decimal `json:"price"`
	CartItemIDs    []string        `json:"cart_item_ids"`
	MenuItemIDs    []string        `json:"menu_item_ids"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// FinalizeCheckoutResponse reports the durable outcome.
type FinalizeCheckoutResponse struct {
	PaymentID    string `json:"payment_id"`
	RemovedCount int64  `json:"removed_count"`
}
