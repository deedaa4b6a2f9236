package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
)

// maxBigQuantity is 2^128 - 1
var maxBigQuantity = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// AssetValueDTO is tagged as {"t": <type>, "c": <content>}
type AssetValueDTO struct {
	Type    ledger.AssetValueType `json:"t"`
	Content any                   `json:"c" swaggertype:"object"`
}

type AssetDTO struct {
	AccountID    string        `json:"account_id"`
	DefinitionID string        `json:"definition_id"`
	Value        AssetValueDTO `json:"value"`
}

func AssetFromEntity(asset ledger.Asset) (AssetDTO, error) {
	value, err := AssetValueFromEntity(asset.Value)
	if err != nil {
		return AssetDTO{}, fmt.Errorf("asset %s: %w", asset.ID, err)
	}

	return AssetDTO{
		AccountID:    asset.ID.AccountID.String(),
		DefinitionID: asset.ID.DefinitionID.String(),
		Value:        value,
	}, nil
}

func AssetValueFromEntity(v ledger.AssetValue) (AssetValueDTO, error) {
	switch v.Type {
	case ledger.ValueQuantity:
		var q uint32
		if err := json.Unmarshal(v.Value, &q); err != nil {
			return AssetValueDTO{}, fmt.Errorf("malformed quantity %s: %w", v.Value, err)
		}
		return AssetValueDTO{Type: v.Type, Content: q}, nil

	case ledger.ValueBigQuantity:
		n, ok := new(big.Int).SetString(unquote(v.Value), 10)
		if !ok || n.Sign() < 0 || n.Cmp(maxBigQuantity) > 0 {
			return AssetValueDTO{}, fmt.Errorf("malformed big quantity %s", v.Value)
		}
		return AssetValueDTO{Type: v.Type, Content: n}, nil

	case ledger.ValueFixed:
		f, err := strconv.ParseFloat(unquote(v.Value), 64)
		if err != nil {
			return AssetValueDTO{}, fmt.Errorf("malformed fixed %s: %w", v.Value, err)
		}
		return AssetValueDTO{Type: v.Type, Content: strconv.FormatFloat(f, 'f', -1, 64)}, nil

	case ledger.ValueStore:
		var store ledger.Metadata
		if err := json.Unmarshal(v.Value, &store); err != nil {
			return AssetValueDTO{}, fmt.Errorf("malformed store %s: %w", v.Value, err)
		}
		return AssetValueDTO{Type: v.Type, Content: metadataOrEmpty(store)}, nil

	default:
		return AssetValueDTO{}, fmt.Errorf("unknown asset value type %q", v.Type)
	}
}

// unquote accepts both 12.5 and "12.5"
func unquote(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
