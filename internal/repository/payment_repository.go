package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// PaymentRepository encapsulates the append-only payment log.
type PaymentRepository interface {
	// FinalizeCheckout inserts the payment record and deletes the cart
	// entries it supersedes as one transaction. Either both changes commit
	// or neither is visible. The returned count reflects entries actually
	// removed; ids already gone are skipped silently.
	FinalizeCheckout(ctx context.Context, record *domain.PaymentRecord) (int64, error)
	ListAll(ctx context.Context) ([]domain.PaymentRecord, error)
	SumPrices(ctx context.Context) (decimal.Decimal, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) FinalizeCheckout(ctx context.Context, record *domain.PaymentRecord) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertQuery = `
        INSERT INTO payments (id, owner_email, price, cart_item_ids, menu_item_ids)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at`

	if err := tx.QueryRow(ctx, insertQuery,
		record.ID,
		record.OwnerEmail,
		record.Price,
		record.CartItemIDs,
		record.MenuItemIDs,
	).Scan(&record.CreatedAt); err != nil {
		return 0, err
	}

	// Ownership is part of the predicate: a checkout can only retire the
	// caller's own cart entries.
	const deleteQuery = `
        DELETE FROM cart_entries WHERE id = ANY($1) AND owner_email = $2`

	cmd, err := tx.Exec(ctx, deleteQuery, record.CartItemIDs, record.OwnerEmail)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *paymentRepository) ListAll(ctx context.Context) ([]domain.PaymentRecord, error) {
	const query = `
        SELECT id, owner_email, price, cart_item_ids, menu_item_ids, created_at
        FROM payments ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PaymentRecord
	for rows.Next() {
		var record domain.PaymentRecord
		if err := rows.Scan(
			&record.ID,
			&record.OwnerEmail,
			&record.Price,
			&record.CartItemIDs,
			&record.MenuItemIDs,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

func (r *paymentRepository) SumPrices(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(price), 0) FROM payments`

	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *paymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.pool, "payments")
}
