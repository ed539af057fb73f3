package order

import (
	"context"
	"fmt"

	"henawys-art/internal/domain"
	orderrepo "henawys-art/internal/repository/order"
)

type repo interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter orderrepo.ListFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) (*domain.Order, error)
}

// Notifier pushes an updated order to realtime subscribers. The httpserver
// websocket hub implements it.
type Notifier interface {
	OrderUpdated(o domain.Order)
}

type Service struct {
	repo     repo
	notifier Notifier
}

func New(repo orderrepo.Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter orderrepo.ListFilter) ([]domain.Order, error) {
	return s.repo.List(ctx, filter)
}

// ListByPhone returns a customer's own orders for tracking.
func (s *Service) ListByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	return s.repo.List(ctx, orderrepo.ListFilter{Phone: phone})
}

// UpdateStatus advances an order along pending -> confirmed -> shipped ->
// delivered, or cancels a non-terminal order. Anything else is rejected
// before touching the database.
func (s *Service) UpdateStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, next)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, current.Status, next)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.OrderUpdated(*updated)
	}
	return updated, nil
}
