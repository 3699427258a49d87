package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// estimatedCount reads the planner's row estimate for a table. The dashboard
// tolerates approximate cardinalities, so this avoids a sequential scan on
// large tables. A fresh table reports -1 until analyzed; fall back to an
// exact count in that case.
func estimatedCount(ctx context.Context, pool *pgxpool.Pool, table string) (int64, error) {
	const query = `SELECT reltuples::bigint FROM pg_class WHERE oid = $1::regclass`

	var estimate int64
	if err := pool.QueryRow(ctx, query, table).Scan(&estimate); err != nil {
		return 0, err
	}
	if estimate >= 0 {
		return estimate, nil
	}

	var exact int64
	if err := pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&exact); err != nil {
		return 0, err
	}
	return exact, nil
}
