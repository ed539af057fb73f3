package order

import (
	"context"

	"henawys-art/internal/domain"
)

type ListFilter struct {
	Status *domain.OrderStatus
	Phone  string
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter ListFilter) ([]domain.Order, error)
	// UpdateStatus persists the new status only while the order still has
	// the status the caller checked the transition against; a concurrent
	// change surfaces as domain.ErrInvalidTransition. Transition validity
	// itself is checked by the caller.
	UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) (*domain.Order, error)
}
