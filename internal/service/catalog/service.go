package catalog

import (
	"context"
	"errors"
	"strings"

	"henawys-art/internal/domain"
	productrepo "henawys-art/internal/repository/product"
	shippingrepo "henawys-art/internal/repository/shippingrate"
)

// Service serves the storefront catalog reads and the admin catalog writes.
type Service struct {
	products productrepo.Repository
	shipping shippingrepo.Repository
}

func New(products productrepo.Repository, shipping shippingrepo.Repository) *Service {
	return &Service{products: products, shipping: shipping}
}

func (s *Service) Products(ctx context.Context, category string, includeInactive bool) ([]domain.Product, error) {
	filter := productrepo.ListFilter{ActiveOnly: !includeInactive}
	if category != "" {
		// A bogus filter must not leak other-category products.
		c, ok := domain.LookupCategory(category)
		if !ok {
			return nil, errors.New("unknown category")
		}
		filter.Category = &c
	}
	return s.products.List(ctx, filter)
}

func (s *Service) Product(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) Addons(ctx context.Context, category string) ([]domain.Addon, error) {
	return s.products.ListAddons(ctx, domain.ParseCategory(category))
}

func (s *Service) ShippingRates(ctx context.Context) ([]domain.ShippingRate, error) {
	return s.shipping.List(ctx)
}

func (s *Service) SaveProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, errors.New("title required")
	}
	if p.PriceCents <= 0 {
		return nil, errors.New("price must be positive")
	}
	p.Category = domain.ParseCategory(string(p.Category))
	return s.products.Upsert(ctx, p)
}

func (s *Service) SetProductActive(ctx context.Context, id string, active bool) error {
	return s.products.SetActive(ctx, id, active)
}

func (s *Service) SaveAddon(ctx context.Context, a domain.Addon) (*domain.Addon, error) {
	if strings.TrimSpace(a.Title) == "" {
		return nil, errors.New("title required")
	}
	if a.PriceCents <= 0 {
		return nil, errors.New("price must be positive")
	}
	a.Category = domain.ParseCategory(string(a.Category))
	return s.products.UpsertAddon(ctx, a)
}

func (s *Service) DeleteAddon(ctx context.Context, id string) error {
	return s.products.DeleteAddon(ctx, id)
}

func (s *Service) SaveShippingRate(ctx context.Context, rate domain.ShippingRate) error {
	if strings.TrimSpace(rate.Governorate) == "" {
		return errors.New("governorate required")
	}
	if rate.FeeCents < 0 {
		return errors.New("fee must not be negative")
	}
	return s.shipping.Upsert(ctx, rate)
}

func (s *Service) DeleteShippingRate(ctx context.Context, governorate string) error {
	return s.shipping.Delete(ctx, governorate)
}
