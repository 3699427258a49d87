package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bistro-service/internal/domain"
)

// ReviewRepository lists customer reviews. The collection is read-only from
// the service's perspective and seeded externally.
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
}

type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository returns a Postgres-backed implementation.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

func (r *reviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	const query = `SELECT id, name, details, rating FROM reviews ORDER BY rating DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.Name,
			&review.Details,
			&review.Rating,
		); err != nil {
			return nil, err
		}
		result = append(result, review)
	}
	return result, rows.Err()
}
