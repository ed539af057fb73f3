// Package checkout assembles the session cart, customer info and shipping
// lookup into an order, submits it and hands back the WhatsApp deep link
// that notifies the merchant.
package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"henawys-art/internal/coupon"
	"henawys-art/internal/domain"
	"henawys-art/internal/notify"
)

type cartStore interface {
	Items(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Customer(ctx context.Context, sessionID string) (domain.CustomerInfo, error)
	Clear(ctx context.Context, sessionID string) error
}

type shippingRepo interface {
	GetByGovernorate(ctx context.Context, governorate string) (*domain.ShippingRate, error)
}

type couponRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
}

type publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

type Service struct {
	store          cartStore
	shipping       shippingRepo
	coupons        couponRepo
	orders         orderRepo
	publisher      publisher
	whatsAppNumber string
	logger         *log.Logger
}

func New(store cartStore, shipping shippingRepo, coupons couponRepo, orders orderRepo, pub publisher, whatsAppNumber string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		store:          store,
		shipping:       shipping,
		coupons:        coupons,
		orders:         orders,
		publisher:      pub,
		whatsAppNumber: whatsAppNumber,
		logger:         logger,
	}
}

type SubmitInput struct {
	CouponCode string `json:"couponCode,omitempty"`
}

type Result struct {
	Order        domain.Order `json:"order"`
	WhatsAppLink string       `json:"whatsAppLink"`
}

// Submit runs the linear checkout flow: validate, price, insert, enqueue
// side effects, clear the cart. Any failure before the order insert leaves
// the cart untouched for retry.
func (s *Service) Submit(ctx context.Context, sessionID string, in SubmitInput) (*Result, error) {
	items, err := s.store.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}
	customer, err := s.store.Customer(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	shippingFee, err := s.validate(ctx, &customer)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.Pricing.FinalPriceCents
	}

	var discount int64
	var cartCoupon *domain.Coupon
	if code := strings.TrimSpace(in.CouponCode); code != "" {
		c, err := s.coupons.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, errors.New("coupon not found")
			}
			return nil, err
		}
		if err := coupon.ValidateCart(*c, subtotal, time.Now().UTC()); err != nil {
			return nil, err
		}
		discount = coupon.Discount(*c, subtotal)
		cartCoupon = c
	}

	order := domain.Order{
		Customer:         customer,
		Items:            items,
		SubtotalCents:    subtotal,
		DiscountCents:    discount,
		ShippingFeeCents: shippingFee,
		TotalCents:       subtotal - discount + shippingFee,
		Status:           domain.StatusPending,
	}
	if cartCoupon != nil {
		order.CouponCode = cartCoupon.Code
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.enqueueSideEffects(ctx, *created)

	// The order stands even if clearing fails; the customer just sees a
	// stale cart.
	if err := s.store.Clear(ctx, sessionID); err != nil {
		s.logger.Printf("checkout: clear cart session=%s error=%v", sessionID, err)
	}

	return &Result{
		Order:        *created,
		WhatsAppLink: notify.WhatsAppLink(s.whatsAppNumber, notify.Summary(*created)),
	}, nil
}

// Preview reports what a cart-scope coupon would take off the current
// subtotal, without redeeming anything.
type Preview struct {
	Code          string `json:"code"`
	SubtotalCents int64  `json:"subtotalCents"`
	DiscountCents int64  `json:"discountCents"`
	TotalCents    int64  `json:"totalCents"`
}

func (s *Service) PreviewCoupon(ctx context.Context, sessionID, code string) (*Preview, error) {
	items, err := s.store.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}
	var subtotal int64
	for _, item := range items {
		subtotal += item.Pricing.FinalPriceCents
	}

	c, err := s.coupons.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("coupon not found")
		}
		return nil, err
	}
	if err := coupon.ValidateCart(*c, subtotal, time.Now().UTC()); err != nil {
		return nil, err
	}
	discount := coupon.Discount(*c, subtotal)
	return &Preview{
		Code:          c.Code,
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TotalCents:    subtotal - discount,
	}, nil
}

func (s *Service) validate(ctx context.Context, customer *domain.CustomerInfo) (int64, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return 0, errors.New("name required")
	}
	if strings.TrimSpace(customer.Phone) == "" {
		return 0, errors.New("phone required")
	}
	switch customer.DeliveryMethod {
	case domain.DeliveryPickup:
		// Pickup is always free regardless of any selected governorate.
		return 0, nil
	case domain.DeliveryShipping, "":
		customer.DeliveryMethod = domain.DeliveryShipping
		if strings.TrimSpace(customer.Governorate) == "" {
			return 0, errors.New("governorate required for shipping")
		}
		if strings.TrimSpace(customer.Address) == "" {
			return 0, errors.New("address required for shipping")
		}
		rate, err := s.shipping.GetByGovernorate(ctx, customer.Governorate)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return 0, errors.New("no shipping rate for governorate")
			}
			return 0, err
		}
		return rate.FeeCents, nil
	default:
		return 0, errors.New("unknown delivery method")
	}
}

// enqueueSideEffects publishes one task per owed counter increment. Publish
// failures are logged and dropped; the order itself already stands.
func (s *Service) enqueueSideEffects(ctx context.Context, o domain.Order) {
	tasks := make([]domain.SideEffectTask, 0, len(o.Items)*2+1)
	for _, item := range o.Items {
		tasks = append(tasks, domain.SideEffectTask{
			ID:        uuid.NewString(),
			Kind:      domain.TaskIncrementSoldCount,
			OrderID:   o.ID,
			ProductID: item.ProductID,
		})
		if item.CouponCode != "" {
			tasks = append(tasks, domain.SideEffectTask{
				ID:         uuid.NewString(),
				Kind:       domain.TaskIncrementCouponUsage,
				OrderID:    o.ID,
				CouponCode: item.CouponCode,
			})
		}
	}
	if o.CouponCode != "" {
		tasks = append(tasks, domain.SideEffectTask{
			ID:         uuid.NewString(),
			Kind:       domain.TaskIncrementCouponUsage,
			OrderID:    o.ID,
			CouponCode: o.CouponCode,
		})
	}

	for _, t := range tasks {
		if err := s.publisher.Publish(ctx, o.ID, t); err != nil {
			s.logger.Printf("checkout: publish task kind=%s order=%s error=%v", t.Kind, o.ID, err)
		}
	}
}
