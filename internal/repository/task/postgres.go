package task

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"henawys-art/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Process(ctx context.Context, t domain.SideEffectTask) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
INSERT INTO processed_tasks (id, kind, order_id)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING
`, t.ID, t.Kind, t.OrderID)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() == 0 {
		r.logger.Printf("task repo: duplicate task id=%s kind=%s", t.ID, t.Kind)
		return false, nil
	}

	// The counter updates stay single-statement so they are atomic under
	// concurrent checkouts.
	switch t.Kind {
	case domain.TaskIncrementSoldCount:
		_, err = tx.Exec(ctx, `UPDATE products SET sold_count = sold_count + 1 WHERE id = $1`, t.ProductID)
	case domain.TaskIncrementCouponUsage:
		_, err = tx.Exec(ctx, `UPDATE coupons SET used_count = used_count + 1 WHERE code = $1`, t.CouponCode)
	default:
		err = fmt.Errorf("unknown task kind %q", t.Kind)
	}
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	r.logger.Printf("task repo: applied task id=%s kind=%s order=%s", t.ID, t.Kind, t.OrderID)
	return true, nil
}
