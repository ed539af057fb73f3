package cart

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"henawys-art/internal/domain"
)

func sampleItems() []domain.CartItem {
	added := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return []domain.CartItem{
		{
			ID:        "a",
			ProductID: "p1",
			Category:  domain.CategoryWoodSlices,
			Title:     "Family wood slice",
			Selections: map[string]domain.Selection{
				"background": {Title: "Background", Value: "true"},
			},
			Pricing: domain.ItemPricing{BasePriceCents: 30000, FinalPriceCents: 35000},
			AddedAt: added,
		},
		{ID: "b", ProductID: "p2", Category: domain.CategoryFrames, Title: "Frame", Pricing: domain.ItemPricing{BasePriceCents: 15000, FinalPriceCents: 15000}, AddedAt: added},
		{ID: "c", ProductID: "p3", Category: domain.CategoryMedals, Title: "Medal", CustomText: "Champs 2025", Pricing: domain.ItemPricing{BasePriceCents: 10000, FinalPriceCents: 18000}, AddedAt: added},
	}
}

func TestItemsRoundTrip(t *testing.T) {
	items := sampleItems()
	raw, err := encodeItems(items)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeItems(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(items, got) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", items, got)
	}
}

func TestCustomerRoundTrip(t *testing.T) {
	info := domain.CustomerInfo{
		Name:           "Sara",
		Phone:          "+201001234567",
		DeliveryMethod: domain.DeliveryShipping,
		Governorate:    "Cairo",
		Address:        "12 Nile St",
		GPSLink:        "https://maps.example/xyz",
	}
	raw, err := encodeCustomer(info)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeCustomer(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != info {
		t.Fatalf("round trip mismatch: %+v vs %+v", info, got)
	}
}

func TestDecodeUnknownSchemaVersionYieldsEmpty(t *testing.T) {
	raw, _ := json.Marshal(map[string]interface{}{
		"schemaVersion": SchemaVersion + 1,
		"items":         []map[string]string{{"id": "a"}},
	})
	items, err := decodeItems(raw)
	if err != nil || items != nil {
		t.Fatalf("expected empty items, got %+v err=%v", items, err)
	}

	raw, _ = json.Marshal(map[string]interface{}{
		"schemaVersion": 0,
		"customer":      map[string]string{"name": "x"},
	})
	info, err := decodeCustomer(raw)
	if err != nil || info != (domain.CustomerInfo{}) {
		t.Fatalf("expected empty customer, got %+v err=%v", info, err)
	}
}

func TestDecodeUnreadablePayloadYieldsEmpty(t *testing.T) {
	// A pre-envelope bare array or plain garbage must decode like a
	// version mismatch, not fail every read until the key expires.
	for _, raw := range [][]byte{
		[]byte(`[{"id":"a"}]`),
		[]byte(`not json at all`),
	} {
		items, err := decodeItems(raw)
		if err != nil || items != nil {
			t.Fatalf("raw %q: expected empty items, got %+v err=%v", raw, items, err)
		}
		info, err := decodeCustomer(raw)
		if err != nil || info != (domain.CustomerInfo{}) {
			t.Fatalf("raw %q: expected empty customer, got %+v err=%v", raw, info, err)
		}
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	if items, err := decodeItems(nil); err != nil || items != nil {
		t.Fatalf("expected nil items, got %+v err=%v", items, err)
	}
	if info, err := decodeCustomer(nil); err != nil || info != (domain.CustomerInfo{}) {
		t.Fatalf("expected empty customer, got %+v err=%v", info, err)
	}
}

func TestRemoveByIDAbsentIsNoOp(t *testing.T) {
	items := sampleItems()
	got := removeByID(append([]domain.CartItem(nil), items...), "missing")
	if !reflect.DeepEqual(items, got) {
		t.Fatalf("expected unchanged list, got %+v", got)
	}
}

func TestRemoveByID(t *testing.T) {
	got := removeByID(sampleItems(), "b")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMergeCustomerShallow(t *testing.T) {
	base := domain.CustomerInfo{Name: "Sara", Phone: "+2010", DeliveryMethod: domain.DeliveryShipping, Governorate: "Cairo", Address: "12 Nile St"}
	merged := mergeCustomer(base, domain.CustomerInfo{Address: "5 Garden City", GPSLink: "https://maps.example/1"})
	if merged.Name != "Sara" || merged.Phone != "+2010" || merged.Governorate != "Cairo" {
		t.Fatalf("merge wiped untouched fields: %+v", merged)
	}
	if merged.Address != "5 Garden City" || merged.GPSLink != "https://maps.example/1" {
		t.Fatalf("merge did not apply patch: %+v", merged)
	}
}
