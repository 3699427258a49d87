package dto

import "github.com/shopspring/decimal"

// CreateMenuItemRequest payload for admin catalog additions.
type CreateMenuItemRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Recipe   string          `json:"recipe"`
}
