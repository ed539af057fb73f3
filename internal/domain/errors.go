package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrCouponInactive indicates the coupon is disabled or outside its active window.
	ErrCouponInactive = errors.New("coupon inactive or expired")
	// ErrCouponScope indicates the coupon was applied at the wrong level (item vs cart).
	ErrCouponScope = errors.New("coupon scope mismatch")
	// ErrCouponCategory indicates the item's category is not targeted by the coupon.
	ErrCouponCategory = errors.New("coupon does not target this category")
	// ErrCouponMinOrder indicates the order value is below the coupon minimum.
	ErrCouponMinOrder = errors.New("order value below coupon minimum")
	// ErrCouponExhausted indicates the coupon reached its usage limit.
	ErrCouponExhausted = errors.New("coupon usage limit reached")

	// ErrInvalidTransition indicates a disallowed order status change.
	ErrInvalidTransition = errors.New("invalid order status transition")
)
