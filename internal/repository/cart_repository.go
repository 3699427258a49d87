package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// CartRepository encapsulates cart entry persistence.
type CartRepository interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.CartEntry, error)
	Create(ctx context.Context, entry *domain.CartEntry) error
	// Delete removes a single entry and reports how many rows were removed.
	// Deleting an absent id is a no-op, not an error.
	Delete(ctx context.Context, id string) (int64, error)
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.CartEntry, error) {
	const query = `
        SELECT id, owner_email, menu_item_id, name, category, price, image, created_at
        FROM cart_entries WHERE owner_email=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CartEntry
	for rows.Next() {
		var entry domain.CartEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.OwnerEmail,
			&entry.MenuItemID,
			&entry.Name,
			&entry.Category,
			&entry.Price,
			&entry.Image,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *cartRepository) Create(ctx context.Context, entry *domain.CartEntry) error {
	const query = `
        INSERT INTO cart_entries (id, owner_email, menu_item_id, name, category, price, image)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		entry.ID,
		entry.OwnerEmail,
		entry.MenuItemID,
		entry.Name,
		entry.Category,
		entry.Price,
		entry.Image,
	).Scan(&entry.CreatedAt)
}

func (r *cartRepository) Delete(ctx context.Context, id string) (int64, error) {
	const query = `DELETE FROM cart_entries WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
