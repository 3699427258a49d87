package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is an immutable log entry for a completed checkout. It is
// created exactly once per successful checkout and never updated or deleted
// by normal operation.
type PaymentRecord struct {
	ID          string          `json:"id"`
	OwnerEmail  string          `json:"owner_email"`
	Price       decimal.Decimal `json:"price"`
	CartItemIDs []string        `json:"cart_item_ids"`
	MenuItemIDs []string        `json:"menu_item_ids"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CategoryStat is a derived sales aggregate per menu category. It is
// computed on demand and never persisted.
type CategoryStat struct {
	Category string          `json:"category"`
	Count    int64           `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardStats are the admin dashboard totals. Cardinalities are
// estimates; Revenue is exact.
type DashboardStats struct {
	Users    int64           `json:"users"`
	Orders   int64           `json:"orders"`
	Products int64           `json:"products"`
	Revenue  decimal.Decimal `json:"revenue"`
}
