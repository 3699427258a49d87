package dto

import "github.com/shopspring/decimal"

// AddCartEntryRequest payload for add-to-cart.
type AddCartEntryRequest struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
}
