package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bistro-service/internal/domain"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

type mockMenuRepo struct {
	items    []domain.MenuItem
	count    int64
	listErr  error
	getErr   error
	countErr error
}

func (m *mockMenuRepo) List(_ context.Context) ([]domain.MenuItem, error) {
	return m.items, m.listErr
}

func (m *mockMenuRepo) GetByIDs(_ context.Context, ids []string) ([]domain.MenuItem, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	var out []domain.MenuItem
	for _, item := range m.items {
		if _, ok := idSet[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockMenuRepo) Create(_ context.Context, _ *domain.MenuItem) error { return nil }
func (m *mockMenuRepo) Delete(_ context.Context, _ string) error           { return nil }

func (m *mockMenuRepo) EstimatedCount(_ context.Context) (int64, error) {
	return m.count, m.countErr
}

func menuItem(id, category, price string) domain.MenuItem {
	return domain.MenuItem{
		ID:       id,
		Name:     "item-" + id,
		Category: category,
		Price:    decimal.RequireFromString(price),
	}
}

func paymentRec(menuItemIDs ...string) domain.PaymentRecord {
	return domain.PaymentRecord{MenuItemIDs: menuItemIDs}
}

func TestReportService_CategoryBreakdown(t *testing.T) {
	t.Run("groups line items by category", func(t *testing.T) {
		menu := &mockMenuRepo{items: []domain.MenuItem{
			menuItem("m1", "Salad", "12.00"),
			menuItem("m2", "Salad", "8.50"),
			menuItem("m3", "Soup", "5.25"),
		}}
		payments := &mockPaymentRepo{records: []domain.PaymentRecord{
			paymentRec("m1", "m3"),
			paymentRec("m2"),
		}}
		svc := NewReportService(&mockUserRepo{}, menu, payments)

		stats, err := svc.CategoryBreakdown(context.Background())
		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, "Salad", stats[0].Category)
		assert.Equal(t, int64(2), stats[0].Count)
		assert.True(t, stats[0].Total.Equal(decimal.RequireFromString("20.50")), "got %s", stats[0].Total)

		assert.Equal(t, "Soup", stats[1].Category)
		assert.Equal(t, int64(1), stats[1].Count)
		assert.True(t, stats[1].Total.Equal(decimal.RequireFromString("5.25")), "got %s", stats[1].Total)
	})

	t.Run("counts repeated references as separate occurrences", func(t *testing.T) {
		menu := &mockMenuRepo{items: []domain.MenuItem{menuItem("m1", "Soup", "5.25")}}
		payments := &mockPaymentRepo{records: []domain.PaymentRecord{paymentRec("m1", "m1", "m1")}}
		svc := NewReportService(&mockUserRepo{}, menu, payments)

		stats, err := svc.CategoryBreakdown(context.Background())
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, int64(3), stats[0].Count)
		assert.True(t, stats[0].Total.Equal(decimal.RequireFromString("15.75")))
	})

	t.Run("skips references to deleted menu items", func(t *testing.T) {
		menu := &mockMenuRepo{items: []domain.MenuItem{menuItem("m1", "Salad", "12.00")}}
		payments := &mockPaymentRepo{records: []domain.PaymentRecord{paymentRec("m1", "gone")}}
		svc := NewReportService(&mockUserRepo{}, menu, payments)

		stats, err := svc.CategoryBreakdown(context.Background())
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, int64(1), stats[0].Count)
	})

	t.Run("empty payment log yields no stats", func(t *testing.T) {
		svc := NewReportService(&mockUserRepo{}, &mockMenuRepo{}, &mockPaymentRepo{})

		stats, err := svc.CategoryBreakdown(context.Background())
		require.NoError(t, err)
		assert.Empty(t, stats)
	})

	t.Run("store failure surfaces as DATABASE_ERROR", func(t *testing.T) {
		payments := &mockPaymentRepo{listErr: errors.New("connection reset")}
		svc := NewReportService(&mockUserRepo{}, &mockMenuRepo{}, payments)

		_, err := svc.CategoryBreakdown(context.Background())
		require.Error(t, err)
		assert.Equal(t, "DATABASE_ERROR", apperrors.ToDomainError(err).Code)
	})
}

func TestReportService_DashboardStats(t *testing.T) {
	t.Run("combines counts with exact revenue", func(t *testing.T) {
		users := &mockUserRepo{byEmail: map[string]*domain.User{
			"a@x.com": {}, "b@x.com": {}, "c@x.com": {},
		}}
		menu := &mockMenuRepo{count: 7}
		payments := &mockPaymentRepo{
			count: 2,
			sum:   decimal.RequireFromString("12.00").Add(decimal.RequireFromString("8.50")),
		}
		svc := NewReportService(users, menu, payments)

		stats, err := svc.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Users)
		assert.Equal(t, int64(2), stats.Orders)
		assert.Equal(t, int64(7), stats.Products)
		assert.True(t, stats.Revenue.Equal(decimal.RequireFromString("20.50")), "got %s", stats.Revenue)
	})

	t.Run("rounds revenue half away from zero", func(t *testing.T) {
		payments := &mockPaymentRepo{sum: decimal.RequireFromString("20.505")}
		svc := NewReportService(&mockUserRepo{byEmail: map[string]*domain.User{}}, &mockMenuRepo{}, payments)

		stats, err := svc.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.True(t, stats.Revenue.Equal(decimal.RequireFromString("20.51")), "got %s", stats.Revenue)
	})

	t.Run("any count failure fails the whole view", func(t *testing.T) {
		payments := &mockPaymentRepo{countErr: errors.New("unavailable")}
		svc := NewReportService(&mockUserRepo{byEmail: map[string]*domain.User{}}, &mockMenuRepo{}, payments)

		_, err := svc.DashboardStats(context.Background())
		require.Error(t, err)
		assert.Equal(t, "DATABASE_ERROR", apperrors.ToDomainError(err).Code)
	})
}
