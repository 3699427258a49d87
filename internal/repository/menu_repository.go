package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// MenuRepository encapsulates catalog persistence.
type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
	EstimatedCount(ctx context.Context) (int64, error)
}

type menuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a Postgres-backed implementation.
func NewMenuRepository(pool *pgxpool.Pool) MenuRepository {
	return &menuRepository{pool: pool}
}

func (r *menuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, name, category, price, image, recipe, created_at
        FROM menu_items ORDER BY category, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

func (r *menuRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, name, category, price, image, recipe, created_at
        FROM menu_items WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

func (r *menuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menu_items (id, name, category, price, image, recipe)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.Price,
		item.Image,
		item.Recipe,
	).Scan(&item.CreatedAt)
}

func (r *menuRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM menu_items WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.pool, "menu_items")
}

func scanMenuItems(rows pgx.Rows) ([]domain.MenuItem, error) {
	var result []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.Price,
			&item.Image,
			&item.Recipe,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
