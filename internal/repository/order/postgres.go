package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

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

const orderColumns = `id::text, customer, items, subtotal_cents, discount_cents, shipping_fee_cents, total_cents, COALESCE(coupon_code, ''), status, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (id, customer, items, subtotal_cents, discount_cents, shipping_fee_cents, total_cents, coupon_code, status)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
RETURNING id::text, created_at, updated_at
`
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return nil, fmt.Errorf("order repo: marshal customer: %w", err)
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("order repo: marshal items: %w", err)
	}

	res := o
	err = r.pool.QueryRow(ctx, q,
		o.ID,
		customer,
		items,
		o.SubtotalCents,
		o.DiscountCents,
		o.ShippingFeeCents,
		o.TotalCents,
		o.CouponCode,
		string(o.Status),
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		r.logger.Printf("order repo: create phone=%s error=%v", o.Customer.Phone, err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s total=%d items=%d", res.ID, res.TotalCents, len(res.Items))
	return &res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	var args []interface{}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		q += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Phone != "" {
		args = append(args, filter.Phone)
		q += ` AND customer->>'phone' = $` + strconv.Itoa(len(args))
	}
	q += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) (*domain.Order, error) {
	// Guarding on the checked status keeps two concurrent staff updates
	// from both writing; the loser sees zero rows and must re-read.
	const q = `
UPDATE orders
SET status = $1, updated_at = now()
WHERE id = $2 AND status = $3
RETURNING ` + orderColumns
	o, err := scanOrder(r.pool.QueryRow(ctx, q, string(to), id, string(from)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: order %s no longer %s", domain.ErrInvalidTransition, id, from)
		}
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("order repo: status id=%s %s -> %s", id, from, to)
	return &o, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	var customer, items []byte
	var status string
	if err := row.Scan(
		&o.ID,
		&customer,
		&items,
		&o.SubtotalCents,
		&o.DiscountCents,
		&o.ShippingFeeCents,
		&o.TotalCents,
		&o.CouponCode,
		&status,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}
	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return domain.Order{}, fmt.Errorf("order repo: unmarshal customer: %w", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return domain.Order{}, fmt.Errorf("order repo: unmarshal items: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	return o, nil
}
