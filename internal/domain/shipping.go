package domain

// ShippingRate maps an Egyptian governorate to its courier fee and the
// estimated delivery window in days.
type ShippingRate struct {
	Governorate   string `json:"governorate"`
	FeeCents      int64  `json:"feeCents"`
	EstimatedDays int    `json:"estimatedDays"`
}
