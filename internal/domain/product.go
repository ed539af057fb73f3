package domain

import "time"

type Product struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	// PriceCents is the base price in piasters (1 EGP = 100).
	PriceCents int64     `json:"priceCents"`
	Images     []string  `json:"images,omitempty"`
	SoldCount  int64     `json:"soldCount"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Addon is a configurable extra offered for a product category, e.g. the
// wooden stand for wood slices.
type Addon struct {
	ID         string   `json:"id"`
	Category   Category `json:"category"`
	Title      string   `json:"title"`
	PriceCents int64    `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}
