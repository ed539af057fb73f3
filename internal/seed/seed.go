package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Category    string
	Title       string
	Description string
	PriceCents  int64
	Images      []string
}

type addonSeed struct {
	Category   string
	Title      string
	PriceCents int64
}

type rateSeed struct {
	Governorate   string
	FeeCents      int64
	EstimatedDays int
}

// Apply inserts demo catalog data for manual testing. It is idempotent:
// products key on (category, title), rates on governorate, coupons on code.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Category:    "phonecases",
			Title:       "Hand-painted portrait case",
			Description: "Custom portrait painted on a sturdy phone case",
			PriceCents:  200_00,
			Images:      []string{"https://cdn.henawys.art/phonecases/portrait.jpg"},
		},
		{
			Category:    "carhangers",
			Title:       "Wooden car hanger",
			Description: "Round wooden hanger with custom front art",
			PriceCents:  150_00,
			Images:      []string{"https://cdn.henawys.art/carhangers/round.jpg"},
		},
		{
			Category:    "medals",
			Title:       "Graduation medal",
			Description: "Engraved medal with ribbon",
			PriceCents:  120_00,
			Images:      []string{"https://cdn.henawys.art/medals/graduation.jpg"},
		},
		{
			Category:    "acrylic",
			Title:       "Acrylic couple stand",
			Description: "Printed acrylic piece, optional wooden stand",
			PriceCents:  180_00,
			Images:      []string{"https://cdn.henawys.art/acrylic/couple.jpg"},
		},
		{
			Category:    "woodslices",
			Title:       "Wood slice portrait",
			Description: "Portrait burned onto a natural wood slice",
			PriceCents:  220_00,
			Images:      []string{"https://cdn.henawys.art/woodslices/portrait.jpg"},
		},
		{
			Category:    "frames",
			Title:       "Pressed flower frame",
			Description: "Dried flowers arranged in a glass frame",
			PriceCents:  250_00,
			Images:      []string{"https://cdn.henawys.art/frames/flowers.jpg"},
		},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Title, err)
		}
	}

	addons := []addonSeed{
		{Category: "phonecases", Title: "Extra person", PriceCents: 50_00},
		{Category: "carhangers", Title: "Text on back", PriceCents: 50_00},
		{Category: "carhangers", Title: "Drawing on back", PriceCents: 100_00},
		{Category: "woodslices", Title: "Painted background", PriceCents: 50_00},
		{Category: "woodslices", Title: "Wooden stand", PriceCents: 20_00},
		{Category: "acrylic", Title: "Painted box", PriceCents: 50_00},
	}
	for _, a := range addons {
		if err := upsertAddon(ctx, pool, a); err != nil {
			return fmt.Errorf("upsert addon %q: %w", a.Title, err)
		}
	}

	rates := []rateSeed{
		{Governorate: "Cairo", FeeCents: 40_00, EstimatedDays: 2},
		{Governorate: "Giza", FeeCents: 40_00, EstimatedDays: 2},
		{Governorate: "Alexandria", FeeCents: 50_00, EstimatedDays: 3},
		{Governorate: "Dakahlia", FeeCents: 55_00, EstimatedDays: 3},
		{Governorate: "Sharqia", FeeCents: 55_00, EstimatedDays: 3},
		{Governorate: "Gharbia", FeeCents: 55_00, EstimatedDays: 3},
		{Governorate: "Qalyubia", FeeCents: 45_00, EstimatedDays: 2},
		{Governorate: "Aswan", FeeCents: 70_00, EstimatedDays: 5},
		{Governorate: "Luxor", FeeCents: 70_00, EstimatedDays: 5},
		{Governorate: "Red Sea", FeeCents: 75_00, EstimatedDays: 5},
	}
	for _, r := range rates {
		if err := upsertRate(ctx, pool, r); err != nil {
			return fmt.Errorf("upsert shipping rate %q: %w", r.Governorate, err)
		}
	}

	if err := upsertWelcomeCoupon(ctx, pool); err != nil {
		return fmt.Errorf("upsert welcome coupon: %w", err)
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (category, title, description, price_cents, images)
SELECT $1, $2, $3, $4, $5
WHERE NOT EXISTS (
    SELECT 1 FROM products WHERE category = $1 AND title = $2
)
`
	_, err := pool.Exec(ctx, q, p.Category, p.Title, p.Description, p.PriceCents, p.Images)
	return err
}

func upsertAddon(ctx context.Context, pool *pgxpool.Pool, a addonSeed) error {
	const q = `
INSERT INTO product_addons (category, title, price_cents)
SELECT $1, $2, $3
WHERE NOT EXISTS (
    SELECT 1 FROM product_addons WHERE category = $1 AND title = $2
)
`
	_, err := pool.Exec(ctx, q, a.Category, a.Title, a.PriceCents)
	return err
}

func upsertRate(ctx context.Context, pool *pgxpool.Pool, r rateSeed) error {
	const q = `
INSERT INTO shipping_rates (governorate, fee_cents, estimated_days)
VALUES ($1, $2, $3)
ON CONFLICT (governorate) DO UPDATE
SET fee_cents = EXCLUDED.fee_cents,
    estimated_days = EXCLUDED.estimated_days
`
	_, err := pool.Exec(ctx, q, r.Governorate, r.FeeCents, r.EstimatedDays)
	return err
}

func upsertWelcomeCoupon(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO coupons (code, discount_type, discount_value, scope, target_categories, min_order_value_cents, usage_limit)
VALUES ('WELCOME10', 'percent', 10, 'cart', '{all}', 30000, 100)
ON CONFLICT (code) DO NOTHING
`
	_, err := pool.Exec(ctx, q)
	return err
}
