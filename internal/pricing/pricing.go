// Package pricing computes the final price of a customized line item from
// its product category and the extras the customer selected. It is pure:
// no persistence, evaluated on every extras change.
package pricing

import "henawys-art/internal/domain"

// CarHangerBack selects the back variant of a car hanger. The two paid
// variants are mutually exclusive (radio selection in the storefront).
type CarHangerBack string

const (
	BackNone        CarHangerBack = ""
	BackText        CarHangerBack = "text"
	BackFullDrawing CarHangerBack = "drawing"
)

// Extras holds every selectable add-on across all categories. Fields that
// do not apply to the product's category are ignored by Quote.
type Extras struct {
	// phonecases
	MoreThanTwoPeople bool
	// carhangers
	CarHangerBack CarHangerBack
	// medals, acrylic
	CoupleSet bool
	// woodslices
	Background  bool
	WoodenStand bool
	// any category
	PaintedBox bool
}

// Piasters per pound, and the flat surcharges in piasters.
const (
	pound = 100

	surchargeExtraPeople = 50 * pound
	surchargeTextBack    = 50 * pound
	surchargeDrawingBack = 100 * pound
	surchargeBackground  = 50 * pound
	surchargeStand       = 20 * pound
	surchargePaintedBox  = 50 * pound
)

// Quote returns the final item price in piasters. Category rules run first,
// then the painted-box surcharge, then the result is rounded up to a whole
// pound. Every known category must have a case here.
func Quote(category domain.Category, basePriceCents int64, extras Extras) int64 {
	total := basePriceCents

	switch category {
	case domain.CategoryPhoneCases:
		if extras.MoreThanTwoPeople {
			total += surchargeExtraPeople
		}
	case domain.CategoryCarHangers:
		switch extras.CarHangerBack {
		case BackText:
			total += surchargeTextBack
		case BackFullDrawing:
			total += surchargeDrawingBack
		}
	case domain.CategoryMedals, domain.CategoryAcrylic:
		if extras.CoupleSet {
			total = coupleSetPrice(total)
		}
	case domain.CategoryWoodSlices:
		if extras.Background {
			total += surchargeBackground
		}
		if extras.WoodenStand {
			total += surchargeStand
		}
	case domain.CategoryFrames, domain.CategoryOther:
		// no category-specific extras
	}

	if extras.PaintedBox {
		total += surchargePaintedBox
	}

	return ceilToPound(total)
}

// coupleSetPrice doubles the price and applies the 10% couple discount, in
// that order. The division rounds up so no fraction of a piaster is lost
// before the final pound ceiling.
func coupleSetPrice(cents int64) int64 {
	return (cents*2*90 + 99) / 100
}

func ceilToPound(cents int64) int64 {
	if cents <= 0 {
		return 0
	}
	return (cents + pound - 1) / pound * pound
}
