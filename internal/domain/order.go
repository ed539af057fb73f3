package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// CanTransition reports whether a staff status change from s to next is
// allowed. Statuses only advance; cancelled is reachable from any
// non-terminal state and, like delivered, is terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered || next == StatusCancelled
	default:
		return false
	}
}

// Order is the immutable checkout snapshot. Line items are embedded as-is;
// the customer never mutates an order after submission, staff only advance
// its status.
type Order struct {
	ID               string       `json:"id"`
	Customer         CustomerInfo `json:"customer"`
	Items            []CartItem   `json:"items"`
	SubtotalCents    int64        `json:"subtotalCents"`
	DiscountCents    int64        `json:"discountCents"`
	ShippingFeeCents int64        `json:"shippingFeeCents"`
	TotalCents       int64        `json:"totalCents"`
	CouponCode       string       `json:"couponCode,omitempty"`
	Status           OrderStatus  `json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}
