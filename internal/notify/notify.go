// Package notify composes the order confirmation message. The merchant has
// no inbound channel of their own: the customer opens a pre-filled WhatsApp
// conversation and sends the summary themselves.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"henawys-art/internal/domain"
)

// Summary renders a human-readable order summary for the WhatsApp message.
func Summary(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n", o.ID)
	fmt.Fprintf(&b, "Name: %s\nPhone: %s\n", o.Customer.Name, o.Customer.Phone)

	if o.Customer.DeliveryMethod == domain.DeliveryPickup {
		b.WriteString("Delivery: pickup\n")
	} else {
		fmt.Fprintf(&b, "Delivery: shipping to %s, %s\n", o.Customer.Governorate, o.Customer.Address)
		if o.Customer.GPSLink != "" {
			fmt.Fprintf(&b, "Location: %s\n", o.Customer.GPSLink)
		}
	}

	b.WriteString("\nItems:\n")
	for i, item := range o.Items {
		fmt.Fprintf(&b, "%d. %s (%s) - %s", i+1, item.Title, item.Category, pounds(item.Pricing.FinalPriceCents))
		if item.CustomText != "" {
			fmt.Fprintf(&b, " | text: %s", item.CustomText)
		}
		if item.Notes != "" {
			fmt.Fprintf(&b, " | notes: %s", item.Notes)
		}
		for _, sel := range item.Selections {
			fmt.Fprintf(&b, " | %s: %s", sel.Title, sel.Value)
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", pounds(o.SubtotalCents))
	if o.DiscountCents > 0 {
		fmt.Fprintf(&b, "Discount: -%s (%s)\n", pounds(o.DiscountCents), o.CouponCode)
	}
	fmt.Fprintf(&b, "Shipping: %s\n", pounds(o.ShippingFeeCents))
	fmt.Fprintf(&b, "Total: %s\n", pounds(o.TotalCents))
	return b.String()
}

// WhatsAppLink builds the wa.me deep link with the message URL-encoded.
func WhatsAppLink(destinationPhone, text string) string {
	phone := strings.TrimLeft(strings.TrimSpace(destinationPhone), "+")
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text)
}

func pounds(cents int64) string {
	if cents%100 == 0 {
		return fmt.Sprintf("%d EGP", cents/100)
	}
	return fmt.Sprintf("%d.%02d EGP", cents/100, cents%100)
}
