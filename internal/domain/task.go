package domain

// Side-effect task kinds published after a successful order insert.
const (
	TaskIncrementSoldCount   = "increment_sold_count"
	TaskIncrementCouponUsage = "increment_coupon_usage"
)

// SideEffectTask is one counter increment owed after checkout. Delivery is
// at-least-once, so consumers must deduplicate on ID before applying.
type SideEffectTask struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	OrderID    string `json:"orderId"`
	ProductID  string `json:"productId,omitempty"`
	CouponCode string `json:"couponCode,omitempty"`
}
