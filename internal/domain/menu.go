package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry. The core treats the catalog as read-only;
// create/delete exist for the admin CRUD surface.
type MenuItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Recipe    string          `json:"recipe,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Review is a customer testimonial, seeded externally and listed as-is.
type Review struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Details string          `json:"details"`
	Rating  decimal.Decimal `json:"rating"`
}
