package shippingrate

import (
	"context"

	"henawys-art/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.ShippingRate, error)
	GetByGovernorate(ctx context.Context, governorate string) (*domain.ShippingRate, error)
	Upsert(ctx context.Context, rate domain.ShippingRate) error
	Delete(ctx context.Context, governorate string) error
}
