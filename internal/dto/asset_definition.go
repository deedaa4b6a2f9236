package dto

import (
	"fmt"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
)

type AssetDefinitionDTO struct {
	ID        string                `json:"id"`
	ValueType ledger.AssetValueType `json:"value_type"`
	Mintable  string                `json:"mintable"`
}

func AssetDefinitionFromEntity(def ledger.AssetDefinition) (AssetDefinitionDTO, error) {
	switch def.ValueType {
	case ledger.ValueQuantity, ledger.ValueBigQuantity, ledger.ValueFixed, ledger.ValueStore:
	default:
		return AssetDefinitionDTO{}, fmt.Errorf("asset definition %s: unknown value type %q", def.ID, def.ValueType)
	}

	return AssetDefinitionDTO{
		ID:        def.ID.String(),
		ValueType: def.ValueType,
		Mintable:  def.Mintable,
	}, nil
}
