package cart

import (
	"context"
	"errors"
	"testing"

	"henawys-art/internal/domain"
)

type stubStore struct {
	items       []domain.CartItem
	customer    domain.CustomerInfo
	addErr      error
	lastSession string
}

func (s *stubStore) Items(_ context.Context, sessionID string) ([]domain.CartItem, error) {
	s.lastSession = sessionID
	return s.items, nil
}

func (s *stubStore) AddItem(_ context.Context, sessionID string, item domain.CartItem) error {
	s.lastSession = sessionID
	if s.addErr != nil {
		return s.addErr
	}
	s.items = append(s.items, item)
	return nil
}

func (s *stubStore) RemoveItem(_ context.Context, _, itemID string) error {
	out := s.items[:0]
	for _, it := range s.items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	s.items = out
	return nil
}

func (s *stubStore) Clear(_ context.Context, _ string) error {
	s.items = nil
	return nil
}

func (s *stubStore) Customer(_ context.Context, _ string) (domain.CustomerInfo, error) {
	return s.customer, nil
}

func (s *stubStore) UpdateCustomer(_ context.Context, _ string, patch domain.CustomerInfo) (domain.CustomerInfo, error) {
	s.customer = patch
	return s.customer, nil
}

type stubProductRepo struct {
	product *domain.Product
	err     error
	lastID  string
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	s.lastID = id
	return s.product, s.err
}

type stubCouponRepo struct {
	coupon   *domain.Coupon
	err      error
	lastCode string
}

func (s *stubCouponRepo) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	s.lastCode = code
	return s.coupon, s.err
}

func phoneCase() *domain.Product {
	return &domain.Product{
		ID:         "p1",
		Category:   domain.CategoryPhoneCases,
		Title:      "Portrait phone case",
		PriceCents: 200 * 100,
		Active:     true,
	}
}

func TestAddItemPricesExtras(t *testing.T) {
	store := &stubStore{}
	svc := New(store, &stubProductRepo{product: phoneCase()}, &stubCouponRepo{})

	item, err := svc.AddItem(context.Background(), "sess", AddItemInput{
		ProductID: "p1",
		Selections: map[string]domain.Selection{
			"moreThanTwoPeople": {Title: "More than two people", Value: "true"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Pricing.FinalPriceCents != 250*100 {
		t.Fatalf("expected 25000, got %d", item.Pricing.FinalPriceCents)
	}
	if item.ID == "" {
		t.Fatal("expected generated item id")
	}
	if len(store.items) != 1 {
		t.Fatalf("expected item persisted, got %d", len(store.items))
	}
}

func TestAddItemValidation(t *testing.T) {
	svc := New(&stubStore{}, &stubProductRepo{err: domain.ErrNotFound}, &stubCouponRepo{})

	if _, err := svc.AddItem(context.Background(), "sess", AddItemInput{}); err == nil || err.Error() != "productId required" {
		t.Fatalf("expected productId error, got %v", err)
	}
	if _, err := svc.AddItem(context.Background(), "sess", AddItemInput{ProductID: "nope"}); err == nil || err.Error() != "product not found" {
		t.Fatalf("expected not found error, got %v", err)
	}

	inactive := phoneCase()
	inactive.Active = false
	svc = New(&stubStore{}, &stubProductRepo{product: inactive}, &stubCouponRepo{})
	if _, err := svc.AddItem(context.Background(), "sess", AddItemInput{ProductID: "p1"}); err == nil || err.Error() != "product not available" {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestAddItemWithItemCoupon(t *testing.T) {
	coupons := &stubCouponRepo{coupon: &domain.Coupon{
		Code:             "CASE10",
		DiscountType:     domain.DiscountPercent,
		DiscountValue:    10,
		Scope:            domain.ScopeItem,
		TargetCategories: []string{"phonecases"},
		Active:           true,
	}}
	svc := New(&stubStore{}, &stubProductRepo{product: phoneCase()}, coupons)

	item, err := svc.AddItem(context.Background(), "sess", AddItemInput{ProductID: "p1", CouponCode: "CASE10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Pricing.FinalPriceCents != 180*100 || item.Pricing.DiscountCents != 20*100 {
		t.Fatalf("unexpected pricing: %+v", item.Pricing)
	}
	if item.CouponCode != "CASE10" {
		t.Fatalf("expected coupon recorded, got %q", item.CouponCode)
	}
}

func TestAddItemRejectsCartScopeCoupon(t *testing.T) {
	coupons := &stubCouponRepo{coupon: &domain.Coupon{
		Code:             "CART10",
		DiscountType:     domain.DiscountPercent,
		DiscountValue:    10,
		Scope:            domain.ScopeCart,
		TargetCategories: []string{"phonecases"},
		Active:           true,
	}}
	svc := New(&stubStore{}, &stubProductRepo{product: phoneCase()}, coupons)

	_, err := svc.AddItem(context.Background(), "sess", AddItemInput{ProductID: "p1", CouponCode: "CART10"})
	if !errors.Is(err, domain.ErrCouponScope) {
		t.Fatalf("expected scope rejection even with matching category, got %v", err)
	}
}

func TestAddThenRemoveLeavesOneItem(t *testing.T) {
	store := &stubStore{}
	svc := New(store, &stubProductRepo{product: phoneCase()}, &stubCouponRepo{})
	in := AddItemInput{
		ProductID:  "p1",
		Selections: map[string]domain.Selection{"moreThanTwoPeople": {Value: "true"}},
	}

	first, err := svc.AddItem(context.Background(), "sess", in)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := svc.AddItem(context.Background(), "sess", in)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("expected distinct generated ids")
	}

	if err := svc.RemoveItem(context.Background(), "sess", first.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items, _ := svc.Items(context.Background(), "sess")
	if len(items) != 1 || items[0].ID != second.ID || items[0].Pricing.FinalPriceCents != 250*100 {
		t.Fatalf("unexpected cart after removal: %+v", items)
	}
}

func TestExtrasFromSelections(t *testing.T) {
	extras := extrasFromSelections(map[string]domain.Selection{
		"carHangerBack": {Value: "drawing"},
		"paintedBox":    {Value: "true"},
		"background":    {Value: "false"},
		"giftWrap":      {Value: "true"}, // unknown id, priced nowhere
	})
	if extras.CarHangerBack != "drawing" || !extras.PaintedBox || extras.Background {
		t.Fatalf("unexpected extras: %+v", extras)
	}
}
