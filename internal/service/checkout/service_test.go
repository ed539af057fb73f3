package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"henawys-art/internal/domain"
)

type stubStore struct {
	items    []domain.CartItem
	customer domain.CustomerInfo
	cleared  bool
	clearErr error
}

func (s *stubStore) Items(_ context.Context, _ string) ([]domain.CartItem, error) {
	return s.items, nil
}

func (s *stubStore) Customer(_ context.Context, _ string) (domain.CustomerInfo, error) {
	return s.customer, nil
}

func (s *stubStore) Clear(_ context.Context, _ string) error {
	s.cleared = true
	return s.clearErr
}

type stubShippingRepo struct {
	rate    *domain.ShippingRate
	err     error
	lastGov string
}

func (s *stubShippingRepo) GetByGovernorate(_ context.Context, gov string) (*domain.ShippingRate, error) {
	s.lastGov = gov
	return s.rate, s.err
}

type stubCouponRepo struct {
	coupon *domain.Coupon
	err    error
}

func (s *stubCouponRepo) GetByCode(_ context.Context, _ string) (*domain.Coupon, error) {
	return s.coupon, s.err
}

type stubOrderRepo struct {
	created *domain.Order
	err     error
}

func (s *stubOrderRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	res := o
	res.ID = "ord-1"
	s.created = &res
	return &res, nil
}

type stubPublisher struct {
	tasks []domain.SideEffectTask
	err   error
}

func (s *stubPublisher) Publish(_ context.Context, _ string, event any) error {
	if s.err != nil {
		return s.err
	}
	s.tasks = append(s.tasks, event.(domain.SideEffectTask))
	return nil
}

func shippingCustomer() domain.CustomerInfo {
	return domain.CustomerInfo{
		Name:           "Sara",
		Phone:          "+2010",
		DeliveryMethod: domain.DeliveryShipping,
		Governorate:    "Giza",
		Address:        "4 Haram St",
	}
}

func cartItems() []domain.CartItem {
	return []domain.CartItem{
		{ID: "a", ProductID: "p1", Category: domain.CategoryPhoneCases, Title: "Case", Pricing: domain.ItemPricing{FinalPriceCents: 250 * 100}},
		{ID: "b", ProductID: "p2", Category: domain.CategoryFrames, Title: "Frame", CouponCode: "FR5", Pricing: domain.ItemPricing{FinalPriceCents: 150 * 100}},
	}
}

func newService(store *stubStore, ship *stubShippingRepo, coupons *stubCouponRepo, orders *stubOrderRepo, pub *stubPublisher) *Service {
	return New(store, ship, coupons, orders, pub, "201000000000", nil)
}

func TestSubmitValidation(t *testing.T) {
	orders := &stubOrderRepo{}
	cases := []struct {
		name    string
		store   *stubStore
		wantErr string
	}{
		{"empty cart", &stubStore{customer: shippingCustomer()}, "cart is empty"},
		{"missing name", &stubStore{items: cartItems(), customer: domain.CustomerInfo{Phone: "+2010"}}, "name required"},
		{"missing phone", &stubStore{items: cartItems(), customer: domain.CustomerInfo{Name: "Sara"}}, "phone required"},
		{"missing governorate", &stubStore{items: cartItems(), customer: domain.CustomerInfo{Name: "Sara", Phone: "+2010", DeliveryMethod: domain.DeliveryShipping, Address: "x"}}, "governorate required for shipping"},
		{"missing address", &stubStore{items: cartItems(), customer: domain.CustomerInfo{Name: "Sara", Phone: "+2010", DeliveryMethod: domain.DeliveryShipping, Governorate: "Giza"}}, "address required for shipping"},
	}
	for _, tc := range cases {
		svc := newService(tc.store, &stubShippingRepo{}, &stubCouponRepo{}, orders, &stubPublisher{})
		_, err := svc.Submit(context.Background(), "sess", SubmitInput{})
		if err == nil || err.Error() != tc.wantErr {
			t.Fatalf("%s: expected %q, got %v", tc.name, tc.wantErr, err)
		}
		if tc.store.cleared {
			t.Fatalf("%s: cart must stay untouched on failure", tc.name)
		}
	}
	if orders.created != nil {
		t.Fatal("no order should have been created")
	}
}

func TestSubmitShippingOrder(t *testing.T) {
	store := &stubStore{items: cartItems(), customer: shippingCustomer()}
	ship := &stubShippingRepo{rate: &domain.ShippingRate{Governorate: "Giza", FeeCents: 50 * 100, EstimatedDays: 3}}
	pub := &stubPublisher{}
	orders := &stubOrderRepo{}
	svc := newService(store, ship, &stubCouponRepo{}, orders, pub)

	res, err := svc.Submit(context.Background(), "sess", SubmitInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.SubtotalCents != 400*100 || res.Order.ShippingFeeCents != 50*100 || res.Order.TotalCents != 450*100 {
		t.Fatalf("unexpected totals: %+v", res.Order)
	}
	if res.Order.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", res.Order.Status)
	}
	if !store.cleared {
		t.Fatal("cart should be cleared after success")
	}
	if !strings.HasPrefix(res.WhatsAppLink, "https://wa.me/201000000000?text=") {
		t.Fatalf("unexpected link: %s", res.WhatsAppLink)
	}

	// Two sold-count tasks plus one usage task for the item coupon.
	var sold, usage int
	for _, task := range pub.tasks {
		switch task.Kind {
		case domain.TaskIncrementSoldCount:
			sold++
		case domain.TaskIncrementCouponUsage:
			usage++
			if task.CouponCode != "FR5" {
				t.Fatalf("unexpected coupon task: %+v", task)
			}
		}
		if task.OrderID != "ord-1" || task.ID == "" {
			t.Fatalf("task missing ids: %+v", task)
		}
	}
	if sold != 2 || usage != 1 {
		t.Fatalf("expected 2 sold + 1 usage tasks, got %d/%d", sold, usage)
	}
}

func TestSubmitPickupIgnoresGovernorate(t *testing.T) {
	customer := shippingCustomer()
	customer.DeliveryMethod = domain.DeliveryPickup
	store := &stubStore{items: cartItems(), customer: customer}
	ship := &stubShippingRepo{err: domain.ErrNotFound}
	svc := newService(store, ship, &stubCouponRepo{}, &stubOrderRepo{}, &stubPublisher{})

	res, err := svc.Submit(context.Background(), "sess", SubmitInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.ShippingFeeCents != 0 {
		t.Fatalf("pickup must yield zero shipping fee, got %d", res.Order.ShippingFeeCents)
	}
	if ship.lastGov != "" {
		t.Fatal("shipping lookup should not run for pickup")
	}
}

func TestSubmitCartCoupon(t *testing.T) {
	store := &stubStore{items: cartItems(), customer: shippingCustomer()}
	ship := &stubShippingRepo{rate: &domain.ShippingRate{FeeCents: 50 * 100}}
	coupons := &stubCouponRepo{coupon: &domain.Coupon{
		Code:          "ALL10",
		DiscountType:  domain.DiscountPercent,
		DiscountValue: 10,
		Scope:         domain.ScopeCart,
		Active:        true,
	}}
	pub := &stubPublisher{}
	svc := newService(store, ship, coupons, &stubOrderRepo{}, pub)

	res, err := svc.Submit(context.Background(), "sess", SubmitInput{CouponCode: "ALL10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.DiscountCents != 40*100 || res.Order.TotalCents != 410*100 {
		t.Fatalf("unexpected totals with coupon: %+v", res.Order)
	}
	if res.Order.CouponCode != "ALL10" {
		t.Fatalf("expected coupon recorded, got %q", res.Order.CouponCode)
	}

	var usageCodes []string
	for _, task := range pub.tasks {
		if task.Kind == domain.TaskIncrementCouponUsage {
			usageCodes = append(usageCodes, task.CouponCode)
		}
	}
	if len(usageCodes) != 2 {
		t.Fatalf("expected item + cart coupon usage tasks, got %v", usageCodes)
	}
}

func TestSubmitItemScopeCouponRejectedAtCart(t *testing.T) {
	store := &stubStore{items: cartItems(), customer: shippingCustomer()}
	ship := &stubShippingRepo{rate: &domain.ShippingRate{FeeCents: 50 * 100}}
	coupons := &stubCouponRepo{coupon: &domain.Coupon{
		Code:          "ITEM10",
		DiscountType:  domain.DiscountPercent,
		DiscountValue: 10,
		Scope:         domain.ScopeItem,
		Active:        true,
	}}
	svc := newService(store, ship, coupons, &stubOrderRepo{}, &stubPublisher{})

	_, err := svc.Submit(context.Background(), "sess", SubmitInput{CouponCode: "ITEM10"})
	if !errors.Is(err, domain.ErrCouponScope) {
		t.Fatalf("expected scope error, got %v", err)
	}
	if store.cleared {
		t.Fatal("cart must stay untouched")
	}
}

func TestSubmitOrderInsertFailureKeepsCart(t *testing.T) {
	store := &stubStore{items: cartItems(), customer: shippingCustomer()}
	ship := &stubShippingRepo{rate: &domain.ShippingRate{FeeCents: 50 * 100}}
	svc := newService(store, ship, &stubCouponRepo{}, &stubOrderRepo{err: errors.New("insert failed")}, &stubPublisher{})

	_, err := svc.Submit(context.Background(), "sess", SubmitInput{})
	if err == nil || err.Error() != "insert failed" {
		t.Fatalf("expected insert error, got %v", err)
	}
	if store.cleared {
		t.Fatal("cart must stay untouched on insert failure")
	}
}

func TestSubmitPublishFailureDoesNotFailOrder(t *testing.T) {
	store := &stubStore{items: cartItems(), customer: shippingCustomer()}
	ship := &stubShippingRepo{rate: &domain.ShippingRate{FeeCents: 50 * 100}}
	svc := newService(store, ship, &stubCouponRepo{}, &stubOrderRepo{}, &stubPublisher{err: errors.New("broker down")})

	res, err := svc.Submit(context.Background(), "sess", SubmitInput{})
	if err != nil {
		t.Fatalf("order must stand despite publish failure, got %v", err)
	}
	if res.Order.ID != "ord-1" || !store.cleared {
		t.Fatalf("unexpected result: %+v cleared=%v", res.Order, store.cleared)
	}
}
