package coupon

import (
	"context"

	"henawys-art/internal/domain"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	Upsert(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	Delete(ctx context.Context, code string) error
}
