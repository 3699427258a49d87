package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/bistro-service/internal/cache"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/payment"
	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// FinalizeResult is the outcome of a successful checkout.
type FinalizeResult struct {
	PaymentID    string
	RemovedCount int64
}

// CheckoutService moves a confirmed payment into the durable payment log and
// retires the cart entries it supersedes.
type CheckoutService struct {
	payments   repository.PaymentRepository
	gateway    payment.Gateway
	idem       cache.IdempotencyStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
	currency   string
}

// NewCheckoutService builds the service.
func NewCheckoutService(
	payments repository.PaymentRepository,
	gateway payment.Gateway,
	idem cache.IdempotencyStore,
	dispatcher events.Dispatcher,
	logger *zap.Logger,
	currency string,
) *CheckoutService {
	return &CheckoutService{
		payments:   payments,
		gateway:    gateway,
		idem:       idem,
		dispatcher: dispatcher,
		logger:     logger,
		currency:   currency,
	}
}

// BeginPaymentIntent starts a gateway payment for the given price and
// returns the client-side secret.
func (s *CheckoutService) BeginPaymentIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	if !price.IsPositive() {
		return "", apperrors.NewValidationError("price must be positive", nil)
	}
	return s.gateway.CreatePaymentIntent(ctx, price, s.currency)
}

// Finalize records the gateway-confirmed payment and removes the referenced
// cart entries as one atomic unit. The owner comes from the validated
// identity, never from the request body.
//
// When the client supplies an idempotency key, a repeated request replays
// the original result instead of writing a second payment record. Keys are
// scoped to the owner, so one caller's key can never replay another
// caller's payment.
func (s *CheckoutService) Finalize(ctx context.Context, ownerEmail string, price decimal.Decimal, cartItemIDs, menuItemIDs []string, idempotencyKey string) (*FinalizeResult, error) {
	if ownerEmail == "" {
		return nil, apperrors.NewUnauthenticated("missing identity")
	}
	if len(cartItemIDs) == 0 {
		return nil, apperrors.NewValidationError("cart item ids required", nil)
	}
	if !price.IsPositive() {
		return nil, apperrors.NewValidationError("price must be positive", nil)
	}

	if idempotencyKey != "" {
		prior, err := s.idem.Lookup(ctx, ownerEmail, idempotencyKey)
		if err != nil {
			s.logger.Warn("idempotency lookup failed", zap.Error(err))
		} else if prior != nil {
			return &FinalizeResult{PaymentID: prior.PaymentID, RemovedCount: prior.RemovedCount}, nil
		}
	}

	record := &domain.PaymentRecord{
		ID:          uuid.NewString(),
		OwnerEmail:  ownerEmail,
		Price:       price,
		CartItemIDs: cartItemIDs,
		MenuItemIDs: menuItemIDs,
	}

	removed, err := s.payments.FinalizeCheckout(ctx, record)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	if idempotencyKey != "" {
		if err := s.idem.Remember(ctx, ownerEmail, idempotencyKey, cache.CheckoutResult{
			PaymentID:    record.ID,
			RemovedCount: removed,
		}); err != nil {
			s.logger.Warn("idempotency store failed", zap.Error(err))
		}
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderPaid,
			Subject:   ownerEmail,
			Timestamp: time.Now(),
			Payload: events.OrderPaidPayload{
				PaymentID:    record.ID,
				OwnerEmail:   ownerEmail,
				Price:        price,
				ItemCount:    len(menuItemIDs),
				RemovedCount: removed,
			},
		})
	}

	return &FinalizeResult{PaymentID: record.ID, RemovedCount: removed}, nil
}
