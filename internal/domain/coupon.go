package domain

import "time"

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// CouponScope decides where a coupon may be redeemed: against a single line
// item before it enters the cart, or against the whole cart subtotal at
// checkout. The two are never interchangeable.
type CouponScope string

const (
	ScopeItem CouponScope = "item"
	ScopeCart CouponScope = "cart"
)

// TargetAllCategories is the sentinel that makes an item coupon apply to
// every category.
const TargetAllCategories = "all"

type Coupon struct {
	Code         string       `json:"code"`
	DiscountType DiscountType `json:"discountType"`
	// DiscountValue is a percentage for percent coupons and whole pounds
	// for fixed coupons.
	DiscountValue      int64       `json:"discountValue"`
	Scope              CouponScope `json:"scope"`
	TargetCategories   []string    `json:"targetCategories,omitempty"`
	MinOrderValueCents int64       `json:"minOrderValueCents,omitempty"`
	// UsageLimit of 0 means unlimited.
	UsageLimit int64 `json:"usageLimit,omitempty"`
	// PerUserLimit is stored and shown in the admin dashboard but is not
	// enforced at redemption time.
	PerUserLimit int64      `json:"perUserLimit,omitempty"`
	UsedCount    int64      `json:"usedCount"`
	Active       bool       `json:"active"`
	StartsAt     *time.Time `json:"startsAt,omitempty"`
	EndsAt       *time.Time `json:"endsAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
