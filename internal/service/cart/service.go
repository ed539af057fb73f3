package cart

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	cartstore "henawys-art/internal/cart"
	"henawys-art/internal/coupon"
	"henawys-art/internal/domain"
	"henawys-art/internal/pricing"
)

// Selection ids the storefront uses for priced extras.
const (
	selMoreThanTwoPeople = "moreThanTwoPeople"
	selCarHangerBack     = "carHangerBack"
	selCoupleSet         = "coupleSet"
	selBackground        = "background"
	selWoodenStand       = "woodenStand"
	selPaintedBox        = "paintedBox"
)

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type couponRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type Service struct {
	store    cartstore.Store
	products productRepo
	coupons  couponRepo
}

func New(store cartstore.Store, products productRepo, coupons couponRepo) *Service {
	return &Service{store: store, products: products, coupons: coupons}
}

type AddItemInput struct {
	ProductID         string                      `json:"productId"`
	Selections        map[string]domain.Selection `json:"selections,omitempty"`
	CustomText        string                      `json:"customText,omitempty"`
	Notes             string                      `json:"notes,omitempty"`
	ReferenceImageURL string                      `json:"referenceImageUrl,omitempty"`
	CouponCode        string                      `json:"couponCode,omitempty"`
}

// AddItem prices the customization, applies an optional item-scope coupon
// and appends the line item to the session cart.
func (s *Service) AddItem(ctx context.Context, sessionID string, in AddItemInput) (*domain.CartItem, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, errors.New("productId required")
	}
	product, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}
	if !product.Active {
		return nil, errors.New("product not available")
	}

	finalPrice := pricing.Quote(product.Category, product.PriceCents, extrasFromSelections(in.Selections))

	item := domain.CartItem{
		ID:                uuid.NewString(),
		ProductID:         product.ID,
		Category:          product.Category,
		Title:             product.Title,
		Selections:        in.Selections,
		CustomText:        in.CustomText,
		Notes:             in.Notes,
		ReferenceImageURL: in.ReferenceImageURL,
		Pricing: domain.ItemPricing{
			BasePriceCents:  product.PriceCents,
			FinalPriceCents: finalPrice,
		},
		AddedAt: time.Now().UTC(),
	}
	if len(product.Images) > 0 {
		item.Image = product.Images[0]
	}

	if code := strings.TrimSpace(in.CouponCode); code != "" {
		c, err := s.coupons.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, errors.New("coupon not found")
			}
			return nil, err
		}
		if err := coupon.ValidateItem(*c, product.Category, finalPrice, time.Now().UTC()); err != nil {
			return nil, err
		}
		discounted := coupon.Apply(*c, finalPrice)
		item.CouponCode = c.Code
		item.Pricing.DiscountCents = finalPrice - discounted
		item.Pricing.FinalPriceCents = discounted
	}

	if err := s.store.AddItem(ctx, sessionID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	return s.store.Items(ctx, sessionID)
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	return s.store.RemoveItem(ctx, sessionID, itemID)
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

func (s *Service) Customer(ctx context.Context, sessionID string) (domain.CustomerInfo, error) {
	return s.store.Customer(ctx, sessionID)
}

func (s *Service) UpdateCustomer(ctx context.Context, sessionID string, patch domain.CustomerInfo) (domain.CustomerInfo, error) {
	return s.store.UpdateCustomer(ctx, sessionID, patch)
}

// extrasFromSelections maps the storefront's selection ids onto the typed
// pricing extras. Unknown selection ids are kept on the item for display
// but do not affect the price.
func extrasFromSelections(selections map[string]domain.Selection) pricing.Extras {
	var extras pricing.Extras
	for id, sel := range selections {
		switch id {
		case selMoreThanTwoPeople:
			extras.MoreThanTwoPeople = isTrue(sel.Value)
		case selCarHangerBack:
			switch sel.Value {
			case string(pricing.BackText):
				extras.CarHangerBack = pricing.BackText
			case string(pricing.BackFullDrawing):
				extras.CarHangerBack = pricing.BackFullDrawing
			}
		case selCoupleSet:
			extras.CoupleSet = isTrue(sel.Value)
		case selBackground:
			extras.Background = isTrue(sel.Value)
		case selWoodenStand:
			extras.WoodenStand = isTrue(sel.Value)
		case selPaintedBox:
			extras.PaintedBox = isTrue(sel.Value)
		}
	}
	return extras
}

func isTrue(v string) bool {
	return strings.EqualFold(v, "true")
}
