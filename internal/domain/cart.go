package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartEntry is a pending selection owned exclusively by OwnerEmail. Entries
// are created on add-to-cart and destroyed individually or in bulk at
// checkout.
type CartEntry struct {
	ID         string          `json:"id"`
	OwnerEmail string          `json:"owner_email"`
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
