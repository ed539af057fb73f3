package product

import (
	"context"

	"henawys-art/internal/domain"
)

type ListFilter struct {
	Category   *domain.Category
	ActiveOnly bool
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	SetActive(ctx context.Context, id string, active bool) error
	ListAddons(ctx context.Context, category domain.Category) ([]domain.Addon, error)
	UpsertAddon(ctx context.Context, a domain.Addon) (*domain.Addon, error)
	DeleteAddon(ctx context.Context, id string) error
}
