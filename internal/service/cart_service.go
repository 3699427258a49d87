package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// CartService manages a caller's pending selections. Every operation is
// scoped to the identity extracted from the credential; a query for another
// user's cart is rejected.
type CartService struct {
	carts repository.CartRepository
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// ListOwn returns the caller's cart entries.
func (s *CartService) ListOwn(ctx context.Context, identity *domain.Identity, queriedEmail string) ([]domain.CartEntry, error) {
	if queriedEmail == "" {
		return []domain.CartEntry{}, nil
	}
	if identity == nil || identity.Subject != queriedEmail {
		return nil, apperrors.NewForbidden("forbidden access")
	}

	entries, err := s.carts.ListByOwner(ctx, queriedEmail)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return entries, nil
}

// Add creates a cart entry owned by the caller.
func (s *CartService) Add(ctx context.Context, identity *domain.Identity, menuItemID, name, category string, price decimal.Decimal, image string) (*domain.CartEntry, error) {
	if identity == nil {
		return nil, apperrors.NewUnauthenticated("missing identity")
	}
	if menuItemID == "" {
		return nil, apperrors.NewValidationError("menu item id required", nil)
	}

	entry := &domain.CartEntry{
		ID:         uuid.NewString(),
		OwnerEmail: identity.Subject,
		MenuItemID: menuItemID,
		Name:       name,
		Category:   category,
		Price:      price,
		Image:      image,
	}
	if err := s.carts.Create(ctx, entry); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return entry, nil
}

// Remove deletes a single entry. Removing an id that is already gone is a
// no-op and reports zero removed.
func (s *CartService) Remove(ctx context.Context, id string) (int64, error) {
	removed, err := s.carts.Delete(ctx, id)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	return removed, nil
}
