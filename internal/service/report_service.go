package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/repository"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// ReportService derives financial and operational statistics from the
// payment log. All views are read-only and either fully succeed or fully
// fail; there is no partial-result fallback.
type ReportService struct {
	users    repository.UserRepository
	menu     repository.MenuRepository
	payments repository.PaymentRepository
}

// NewReportService builds the service.
func NewReportService(users repository.UserRepository, menu repository.MenuRepository, payments repository.PaymentRepository) *ReportService {
	return &ReportService{users: users, menu: menu, payments: payments}
}

// CategoryBreakdown joins every payment's menu item references against the
// catalog and reduces them to per-category counts and totals. Count is the
// number of line-item occurrences; Total is the decimal sum of prices over
// those occurrences, rounded to 2 places half away from zero. References to
// since-deleted menu items contribute nothing, matching an inner join.
func (s *ReportService) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	idSet := make(map[string]struct{})
	for _, record := range payments {
		for _, id := range record.MenuItemIDs {
			idSet[id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	itemsByID := make(map[string]domain.MenuItem, len(ids))
	if len(ids) > 0 {
		items, err := s.menu.GetByIDs(ctx, ids)
		if err != nil {
			return nil, apperrors.NewDatabaseError(err)
		}
		for _, item := range items {
			itemsByID[item.ID] = item
		}
	}

	counts := make(map[string]int64)
	totals := make(map[string]decimal.Decimal)
	for _, record := range payments {
		for _, id := range record.MenuItemIDs {
			item, ok := itemsByID[id]
			if !ok {
				continue
			}
			counts[item.Category]++
			totals[item.Category] = totals[item.Category].Add(item.Price)
		}
	}

	stats := make([]domain.CategoryStat, 0, len(counts))
	for category, count := range counts {
		stats = append(stats, domain.CategoryStat{
			Category: category,
			Count:    count,
			Total:    totals[category].Round(2),
		})
	}
	// The set is unordered by contract; sort for stable responses.
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	return stats, nil
}

// DashboardStats returns the admin dashboard totals. Cardinalities are fast
// estimates; revenue is the exact sum over the payment log.
func (s *ReportService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	users, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	orders, err := s.payments.EstimatedCount(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	products, err := s.menu.EstimatedCount(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	revenue, err := s.payments.SumPrices(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &domain.DashboardStats{
		Users:    users,
		Orders:   orders,
		Products: products,
		Revenue:  revenue.Round(2),
	}, nil
}
