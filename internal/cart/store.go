// Package cart persists per-session carts. A session owns two independently
// stored records: the line-item list and the customer-info record. Clearing
// the cart after checkout removes the items only; customer info survives so
// a returning customer does not retype their details.
package cart

import (
	"context"

	"henawys-art/internal/domain"
)

type Store interface {
	Items(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	AddItem(ctx context.Context, sessionID string, item domain.CartItem) error
	// RemoveItem is a no-op when no item carries the given id.
	RemoveItem(ctx context.Context, sessionID, itemID string) error
	Clear(ctx context.Context, sessionID string) error
	Customer(ctx context.Context, sessionID string) (domain.CustomerInfo, error)
	UpdateCustomer(ctx context.Context, sessionID string, patch domain.CustomerInfo) (domain.CustomerInfo, error)
}

func removeByID(items []domain.CartItem, id string) []domain.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// mergeCustomer shallow-merges patch into base: zero-valued patch fields
// leave the stored value untouched, so partial updates from individual form
// fields never wipe the rest of the record.
func mergeCustomer(base, patch domain.CustomerInfo) domain.CustomerInfo {
	if patch.Name != "" {
		base.Name = patch.Name
	}
	if patch.Phone != "" {
		base.Phone = patch.Phone
	}
	if patch.DeliveryMethod != "" {
		base.DeliveryMethod = patch.DeliveryMethod
	}
	if patch.Governorate != "" {
		base.Governorate = patch.Governorate
	}
	if patch.Address != "" {
		base.Address = patch.Address
	}
	if patch.GPSLink != "" {
		base.GPSLink = patch.GPSLink
	}
	return base
}
