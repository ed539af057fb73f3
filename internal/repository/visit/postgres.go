package visit

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Increment(ctx context.Context) error {
	const q = `
INSERT INTO site_visits (day, count)
VALUES (CURRENT_DATE, 1)
ON CONFLICT (day) DO UPDATE SET count = site_visits.count + 1
`
	_, err := r.pool.Exec(ctx, q)
	return err
}

func (r *postgresRepo) CountSince(ctx context.Context, since time.Time) ([]DayCount, error) {
	const q = `SELECT day, count FROM site_visits WHERE day >= $1 ORDER BY day`
	rows, err := r.pool.Query(ctx, q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DayCount
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, err
		}
		result = append(result, dc)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Total(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(count), 0) FROM site_visits`).Scan(&total)
	return total, err
}
