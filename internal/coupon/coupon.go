// Package coupon validates coupon codes against their scope, targeting and
// limits, and computes discounts. It is pure over the coupon record and the
// amount under evaluation; persistence of usage counters lives elsewhere.
package coupon

import (
	"time"

	"henawys-art/internal/domain"
)

// ValidateItem checks whether c may discount a single line item of the
// given category and total, before it enters the cart. A cart-scope coupon
// is rejected here even when the category matches its targets.
func ValidateItem(c domain.Coupon, category domain.Category, itemTotalCents int64, now time.Time) error {
	if c.Scope != domain.ScopeItem {
		return domain.ErrCouponScope
	}
	if err := validateCommon(c, itemTotalCents, now); err != nil {
		return err
	}
	if !targetsCategory(c, category) {
		return domain.ErrCouponCategory
	}
	return nil
}

// ValidateCart checks whether c may discount the whole-cart subtotal at
// checkout.
func ValidateCart(c domain.Coupon, subtotalCents int64, now time.Time) error {
	if c.Scope != domain.ScopeCart {
		return domain.ErrCouponScope
	}
	return validateCommon(c, subtotalCents, now)
}

func validateCommon(c domain.Coupon, amountCents int64, now time.Time) error {
	if !c.Active {
		return domain.ErrCouponInactive
	}
	if c.StartsAt != nil && now.Before(*c.StartsAt) {
		return domain.ErrCouponInactive
	}
	if c.EndsAt != nil && now.After(*c.EndsAt) {
		return domain.ErrCouponInactive
	}
	if c.MinOrderValueCents > 0 && amountCents < c.MinOrderValueCents {
		return domain.ErrCouponMinOrder
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return domain.ErrCouponExhausted
	}
	return nil
}

func targetsCategory(c domain.Coupon, category domain.Category) bool {
	if len(c.TargetCategories) == 0 {
		return true
	}
	for _, t := range c.TargetCategories {
		if t == domain.TargetAllCategories || t == string(category) {
			return true
		}
	}
	return false
}

// Discount returns the amount in piasters that c takes off amountCents.
// Percent coupons round the discount down; fixed coupons (denominated in
// whole pounds) never discount below zero.
func Discount(c domain.Coupon, amountCents int64) int64 {
	switch c.DiscountType {
	case domain.DiscountPercent:
		return amountCents * c.DiscountValue / 100
	case domain.DiscountFixed:
		fixed := c.DiscountValue * 100
		if fixed > amountCents {
			return amountCents
		}
		return fixed
	default:
		return 0
	}
}

// Apply returns amountCents after the discount, floored at zero.
func Apply(c domain.Coupon, amountCents int64) int64 {
	remaining := amountCents - Discount(c, amountCents)
	if remaining < 0 {
		return 0
	}
	return remaining
}
