package cart

import (
	"encoding/json"

	"henawys-art/internal/domain"
)

// SchemaVersion is embedded in every stored envelope. Readers treat an
// envelope with a different version as empty instead of failing, so a
// deploy that changes the stored shape degrades to a fresh cart rather
// than a malformed read.
const SchemaVersion = 1

type itemsEnvelope struct {
	SchemaVersion int               `json:"schemaVersion"`
	Items         []domain.CartItem `json:"items"`
}

type customerEnvelope struct {
	SchemaVersion int                 `json:"schemaVersion"`
	Customer      domain.CustomerInfo `json:"customer"`
}

func encodeItems(items []domain.CartItem) ([]byte, error) {
	return json.Marshal(itemsEnvelope{SchemaVersion: SchemaVersion, Items: items})
}

func decodeItems(raw []byte) ([]domain.CartItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var env itemsEnvelope
	// An unreadable payload (corrupt or pre-envelope) is treated exactly
	// like a version mismatch; erroring here would wedge the session until
	// the key expires.
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil
	}
	if env.SchemaVersion != SchemaVersion {
		return nil, nil
	}
	return env.Items, nil
}

func encodeCustomer(info domain.CustomerInfo) ([]byte, error) {
	return json.Marshal(customerEnvelope{SchemaVersion: SchemaVersion, Customer: info})
}

func decodeCustomer(raw []byte) (domain.CustomerInfo, error) {
	if len(raw) == 0 {
		return domain.CustomerInfo{}, nil
	}
	var env customerEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.CustomerInfo{}, nil
	}
	if env.SchemaVersion != SchemaVersion {
		return domain.CustomerInfo{}, nil
	}
	return env.Customer, nil
}
