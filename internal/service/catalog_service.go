package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/bistro-service/internal/cache"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// CatalogService serves the menu and review collections.
type CatalogService struct {
	menu      repository.MenuRepository
	reviews   repository.ReviewRepository
	menuCache *cache.MenuCache
}

// NewCatalogService builds the service.
func NewCatalogService(menu repository.MenuRepository, reviews repository.ReviewRepository, menuCache *cache.MenuCache) *CatalogService {
	return &CatalogService{menu: menu, reviews: reviews, menuCache: menuCache}
}

// ListMenu returns the full catalog, served from cache when warm.
func (s *CatalogService) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	if items, ok := s.menuCache.Get(ctx); ok {
		return items, nil
	}

	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	s.menuCache.Set(ctx, items)
	return items, nil
}

// CreateMenuItem adds a catalog entry and drops the cached listing.
func (s *CatalogService) CreateMenuItem(ctx context.Context, name, category string, price decimal.Decimal, image, recipe string) (*domain.MenuItem, error) {
	if name == "" || category == "" {
		return nil, apperrors.NewValidationError("name and category required", nil)
	}
	if price.IsNegative() {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}

	item := &domain.MenuItem{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Price:    price,
		Image:    image,
		Recipe:   recipe,
	}
	if err := s.menu.Create(ctx, item); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	s.menuCache.Invalidate(ctx)
	return item, nil
}

// DeleteMenuItem removes a catalog entry and drops the cached listing.
func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	if err := s.menu.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("menu item", map[string]any{"id": id})
		}
		return apperrors.NewDatabaseError(err)
	}

	s.menuCache.Invalidate(ctx)
	return nil
}

// ListReviews returns all customer reviews.
func (s *CatalogService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return reviews, nil
}
