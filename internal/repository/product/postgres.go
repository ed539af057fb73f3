package product

import (
	"context"
	"errors"
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

const productColumns = `id::text, category, title, COALESCE(description, ''), price_cents, images, sold_count, active, created_at`

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		q += ` AND category = $1`
	}
	if filter.ActiveOnly {
		q += ` AND active`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, category, title, description, price_cents, images, active)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, NULLIF($4, ''), $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    category = EXCLUDED.category,
    title = EXCLUDED.title,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    images = EXCLUDED.images,
    active = EXCLUDED.active
RETURNING id::text, sold_count, created_at
`
	res := p
	err := r.pool.QueryRow(ctx, q,
		p.ID,
		string(p.Category),
		p.Title,
		p.Description,
		p.PriceCents,
		p.Images,
		p.Active,
	).Scan(&res.ID, &res.SoldCount, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert title=%q error=%v", p.Title, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted id=%s title=%q", res.ID, res.Title)
	return &res, nil
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE products SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListAddons(ctx context.Context, category domain.Category) ([]domain.Addon, error) {
	const q = `
SELECT id::text, category, title, price_cents, created_at
FROM product_addons
WHERE category = $1
ORDER BY title
`
	rows, err := r.pool.Query(ctx, q, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Addon
	for rows.Next() {
		var a domain.Addon
		var cat string
		if err := rows.Scan(&a.ID, &cat, &a.Title, &a.PriceCents, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Category = domain.Category(cat)
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *postgresRepo) UpsertAddon(ctx context.Context, a domain.Addon) (*domain.Addon, error) {
	const q = `
INSERT INTO product_addons (id, category, title, price_cents)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
    category = EXCLUDED.category,
    title = EXCLUDED.title,
    price_cents = EXCLUDED.price_cents
RETURNING id::text, created_at
`
	res := a
	err := r.pool.QueryRow(ctx, q, a.ID, string(a.Category), a.Title, a.PriceCents).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert addon title=%q error=%v", a.Title, err)
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) DeleteAddon(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM product_addons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	var cat string
	if err := row.Scan(&p.ID, &cat, &p.Title, &p.Description, &p.PriceCents, &p.Images, &p.SoldCount, &p.Active, &p.CreatedAt); err != nil {
		return domain.Product{}, err
	}
	p.Category = domain.Category(cat)
	return p, nil
}
