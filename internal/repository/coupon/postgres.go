package coupon

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"henawys-art/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const couponColumns = `code, discount_type, discount_value, scope, target_categories, min_order_value_cents, usage_limit, per_user_limit, used_count, active, starts_at, ends_at, created_at`

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	const q = `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`
	c, err := scanCoupon(r.pool.QueryRow(ctx, q, normalize(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Coupon, error) {
	const q = `SELECT ` + couponColumns + ` FROM coupons ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	const q = `
INSERT INTO coupons (code, discount_type, discount_value, scope, target_categories, min_order_value_cents, usage_limit, per_user_limit, active, starts_at, ends_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (code) DO UPDATE SET
    discount_type = EXCLUDED.discount_type,
    discount_value = EXCLUDED.discount_value,
    scope = EXCLUDED.scope,
    target_categories = EXCLUDED.target_categories,
    min_order_value_cents = EXCLUDED.min_order_value_cents,
    usage_limit = EXCLUDED.usage_limit,
    per_user_limit = EXCLUDED.per_user_limit,
    active = EXCLUDED.active,
    starts_at = EXCLUDED.starts_at,
    ends_at = EXCLUDED.ends_at
RETURNING used_count, created_at
`
	res := c
	res.Code = normalize(c.Code)
	err := r.pool.QueryRow(ctx, q,
		res.Code,
		string(c.DiscountType),
		c.DiscountValue,
		string(c.Scope),
		c.TargetCategories,
		c.MinOrderValueCents,
		c.UsageLimit,
		c.PerUserLimit,
		c.Active,
		c.StartsAt,
		c.EndsAt,
	).Scan(&res.UsedCount, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, code string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM coupons WHERE code = $1`, normalize(code))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func scanCoupon(row pgx.Row) (domain.Coupon, error) {
	var c domain.Coupon
	var dt, scope string
	if err := row.Scan(
		&c.Code,
		&dt,
		&c.DiscountValue,
		&scope,
		&c.TargetCategories,
		&c.MinOrderValueCents,
		&c.UsageLimit,
		&c.PerUserLimit,
		&c.UsedCount,
		&c.Active,
		&c.StartsAt,
		&c.EndsAt,
		&c.CreatedAt,
	); err != nil {
		return domain.Coupon{}, err
	}
	c.DiscountType = domain.DiscountType(dt)
	c.Scope = domain.CouponScope(scope)
	return c, nil
}
