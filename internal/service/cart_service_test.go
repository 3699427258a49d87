package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bistro-service/internal/domain"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

type mockCartRepo struct {
	byOwner map[string][]domain.CartEntry
	created []*domain.CartEntry
	removed int64
	listErr error
	delErr  error
}

func (m *mockCartRepo) ListByOwner(_ context.Context, ownerEmail string) ([]domain.CartEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.byOwner[ownerEmail], nil
}

func (m *mockCartRepo) Create(_ context.Context, entry *domain.CartEntry) error {
	m.created = append(m.created, entry)
	return nil
}

func (m *mockCartRepo) Delete(_ context.Context, _ string) (int64, error) {
	return m.removed, m.delErr
}

func TestCartService_ListOwn(t *testing.T) {
	repo := &mockCartRepo{byOwner: map[string][]domain.CartEntry{
		"a@x.com": {{ID: "c1", OwnerEmail: "a@x.com"}},
	}}
	svc := NewCartService(repo)

	t.Run("returns the caller's own entries", func(t *testing.T) {
		entries, err := svc.ListOwn(context.Background(), &domain.Identity{Subject: "a@x.com"}, "a@x.com")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "c1", entries[0].ID)
	})

	t.Run("rejects a query for another user's cart", func(t *testing.T) {
		_, err := svc.ListOwn(context.Background(), &domain.Identity{Subject: "b@x.com"}, "a@x.com")
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
	})

	t.Run("empty query email returns an empty list", func(t *testing.T) {
		entries, err := svc.ListOwn(context.Background(), &domain.Identity{Subject: "a@x.com"}, "")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestCartService_Add(t *testing.T) {
	repo := &mockCartRepo{byOwner: map[string][]domain.CartEntry{}}
	svc := NewCartService(repo)
	identity := &domain.Identity{Subject: "a@x.com"}

	entry, err := svc.Add(context.Background(), identity, "m1", "Caesar", "Salad", decimal.RequireFromString("12.00"), "")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", entry.OwnerEmail)
	assert.NotEmpty(t, entry.ID)
	require.Len(t, repo.created, 1)

	_, err = svc.Add(context.Background(), identity, "", "Caesar", "Salad", decimal.Zero, "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestCartService_Remove(t *testing.T) {
	t.Run("reports entries actually removed", func(t *testing.T) {
		svc := NewCartService(&mockCartRepo{removed: 1})

		removed, err := svc.Remove(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)
	})

	t.Run("removing an absent id is a no-op", func(t *testing.T) {
		svc := NewCartService(&mockCartRepo{removed: 0})

		removed, err := svc.Remove(context.Background(), "already-gone")
		require.NoError(t, err)
		assert.Equal(t, int64(0), removed)
	})
}
