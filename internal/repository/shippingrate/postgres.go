package shippingrate

import (
	"context"
	"errors"

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.ShippingRate, error) {
	const q = `SELECT governorate, fee_cents, estimated_days FROM shipping_rates ORDER BY governorate`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ShippingRate
	for rows.Next() {
		var rate domain.ShippingRate
		if err := rows.Scan(&rate.Governorate, &rate.FeeCents, &rate.EstimatedDays); err != nil {
			return nil, err
		}
		result = append(result, rate)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByGovernorate(ctx context.Context, governorate string) (*domain.ShippingRate, error) {
	const q = `SELECT governorate, fee_cents, estimated_days FROM shipping_rates WHERE governorate = $1`
	var rate domain.ShippingRate
	err := r.pool.QueryRow(ctx, q, governorate).Scan(&rate.Governorate, &rate.FeeCents, &rate.EstimatedDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, rate domain.ShippingRate) error {
	const q = `
INSERT INTO shipping_rates (governorate, fee_cents, estimated_days)
VALUES ($1, $2, $3)
ON CONFLICT (governorate) DO UPDATE SET
    fee_cents = EXCLUDED.fee_cents,
    estimated_days = EXCLUDED.estimated_days
`
	_, err := r.pool.Exec(ctx, q, rate.Governorate, rate.FeeCents, rate.EstimatedDays)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, governorate string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shipping_rates WHERE governorate = $1`, governorate)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
