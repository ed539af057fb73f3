package domain

// Category identifies a product line. Pricing rules dispatch on it, so new
// categories must be added here and handled in the pricing package.
type Category string

const (
	CategoryPhoneCases Category = "phonecases"
	CategoryCarHangers Category = "carhangers"
	CategoryMedals     Category = "medals"
	CategoryAcrylic    Category = "acrylic"
	CategoryWoodSlices Category = "woodslices"
	CategoryFrames     Category = "frames"
	CategoryOther      Category = "other"
)

// KnownCategories lists every category in display order.
var KnownCategories = []Category{
	CategoryPhoneCases,
	CategoryCarHangers,
	CategoryMedals,
	CategoryAcrylic,
	CategoryWoodSlices,
	CategoryFrames,
	CategoryOther,
}

// ParseCategory maps a raw string onto a known category, falling back to
// CategoryOther so that unknown values skip category pricing rules instead
// of failing.
func ParseCategory(raw string) Category {
	if c, ok := LookupCategory(raw); ok {
		return c
	}
	return CategoryOther
}

// LookupCategory reports whether raw names a known category. Use it where
// an unknown value should be rejected rather than coerced to CategoryOther,
// such as a storefront filter.
func LookupCategory(raw string) (Category, bool) {
	for _, c := range KnownCategories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}
