package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserPromoted   EventType = "user_promoted"
	EventOrderPaid      EventType = "order_paid"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// UserPromotedPayload payload.
type UserPromotedPayload struct {
	UserID string `json:"user_id"`
}

// OrderPaidPayload payload.
type OrderPaidPayload struct {
	PaymentID    string          `json:"payment_id"`
	OwnerEmail   string          `json:"owner_email"`
	Price        decimal.Decimal `json:"price"`
	ItemCount    int             `json:"item_count"`
	RemovedCount int64           `json:"removed_count"`
}
