package dto

import (
	"fmt"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
)

type AccountDTO struct {
	ID       string          `json:"id"`
	Assets   []AssetDTO      `json:"assets"`
	Metadata ledger.Metadata `json:"metadata" swaggertype:"object"`
	Roles    []string        `json:"roles"`
}

func AccountFromEntity(account ledger.Account) (AccountDTO, error) {
	assets := make([]AssetDTO, 0, len(account.Assets))
	for _, asset := range account.Assets {
		a, err := AssetFromEntity(asset)
		if err != nil {
			return AccountDTO{}, fmt.Errorf("account %s: %w", account.ID, err)
		}
		assets = append(assets, a)
	}

	roles := account.Roles
	if roles == nil {
		roles = []string{}
	}

	return AccountDTO{
		ID:       account.ID.String(),
		Assets:   assets,
		Metadata: metadataOrEmpty(account.Metadata),
		Roles:    roles,
	}, nil
}

func metadataOrEmpty(m ledger.Metadata) ledger.Metadata {
	if m == nil {
		return ledger.Metadata{}
	}
	return m
}
