package dto

import (
	"fmt"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
)

type DomainDTO struct {
	ID               string               `json:"id"`
	Accounts         []AccountDTO         `json:"accounts"`
	Logo             *string              `json:"logo"`
	Metadata         ledger.Metadata      `json:"metadata" swaggertype:"object"`
	AssetDefinitions []AssetDefinitionDTO `json:"asset_definitions"`
	// TODO: count triggers once the ledger exposes a trigger query
	Triggers uint32 `json:"triggers"`
}

func DomainFromEntity(domain ledger.Domain) (DomainDTO, error) {
	accounts := make([]AccountDTO, 0, len(domain.Accounts))
	for _, account := range domain.Accounts {
		a, err := AccountFromEntity(account)
		if err != nil {
			return DomainDTO{}, fmt.Errorf("domain %s: %w", domain.ID, err)
		}
		accounts = append(accounts, a)
	}

	definitions := make([]AssetDefinitionDTO, 0, len(domain.AssetDefinitions))
	for _, def := range domain.AssetDefinitions {
		d, err := AssetDefinitionFromEntity(def)
		if err != nil {
			return DomainDTO{}, fmt.Errorf("domain %s: %w", domain.ID, err)
		}
		definitions = append(definitions, d)
	}

	return DomainDTO{
		ID:               domain.ID.String(),
		Accounts:         accounts,
		Logo:             domain.Logo,
		Metadata:         metadataOrEmpty(domain.Metadata),
		AssetDefinitions: definitions,
	}, nil
}
