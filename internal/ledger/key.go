package ledger

import (
	"encoding/json"
	"fmt"
)

// Key extracts the storage key of an entity payload, the value lookups match on
func Key(kind Kind, payload json.RawMessage) (string, error) {
	switch kind {
	case KindAccount:
		var e struct {
			ID AccountID `json:"id"`
		}
		if err := json.Unmarshal(payload, &e); err != nil {
			return "", fmt.Errorf("account key: %w", err)
		}
		return e.ID.String(), nil
	case KindAsset:
		var e struct {
			ID AssetID `json:"id"`
		}
		if err := json.Unmarshal(payload, &e); err != nil {
			return "", fmt.Errorf("asset key: %w", err)
		}
		return e.ID.String(), nil
	case KindAssetDefinition:
		var e struct {
			ID AssetDefinitionID `json:"id"`
		}
		if err := json.Unmarshal(payload, &e); err != nil {
			return "", fmt.Errorf("asset definition key: %w", err)
		}
		return e.ID.String(), nil
	case KindPeer:
		var e struct {
			ID PeerID `json:"id"`
		}
		if err := json.Unmarshal(payload, &e); err != nil {
			return "", fmt.Errorf("peer key: %w", err)
		}
		if e.ID.PublicKey == "" {
			return "", fmt.Errorf("peer key: public_key is empty")
		}
		return e.ID.PublicKey, nil
	case KindDomain, KindRole:
		var e struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(payload, &e); err != nil {
			return "", fmt.Errorf("%s key: %w", kind, err)
		}
		if e.ID == "" {
			return "", fmt.Errorf("%s key: id is empty", kind)
		}
		return e.ID, nil
	default:
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}
}
