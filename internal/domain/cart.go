package domain

import "time"

// Selection records one add-on choice the customer made for a line item.
// Value carries the chosen option for enum-like add-ons ("text", "drawing");
// boolean add-ons store "true".
type Selection struct {
	Title     string `json:"title"`
	Value     string `json:"value"`
	Operation string `json:"operation,omitempty"`
}

// ItemPricing is the computed price breakdown of a single line item.
type ItemPricing struct {
	BasePriceCents  int64 `json:"basePriceCents"`
	FinalPriceCents int64 `json:"finalPriceCents"`
	DiscountCents   int64 `json:"discountCents,omitempty"`
}

// CartItem is one customized product instance in a cart. The product fields
// are a snapshot taken when the item was added; later catalog edits do not
// reprice items already in a cart.
type CartItem struct {
	ID                string               `json:"id"`
	ProductID         string               `json:"productId"`
	Category          Category             `json:"category"`
	Title             string               `json:"title"`
	Image             string               `json:"image,omitempty"`
	Selections        map[string]Selection `json:"selections,omitempty"`
	CustomText        string               `json:"customText,omitempty"`
	Notes             string               `json:"notes,omitempty"`
	ReferenceImageURL string               `json:"referenceImageUrl,omitempty"`
	CouponCode        string               `json:"couponCode,omitempty"`
	Pricing           ItemPricing          `json:"pricing"`
	AddedAt           time.Time            `json:"addedAt"`
}

// DeliveryMethod selects between courier shipping and studio pickup.
type DeliveryMethod string

const (
	DeliveryShipping DeliveryMethod = "shipping"
	DeliveryPickup   DeliveryMethod = "pickup"
)

// CustomerInfo is the per-session customer record. It survives cart clears:
// a returning customer keeps their details after checkout.
type CustomerInfo struct {
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
	Governorate    string         `json:"governorate,omitempty"`
	Address        string         `json:"address,omitempty"`
	GPSLink        string         `json:"gpsLink,omitempty"`
}
