package router

import (
	"github.com/DjordjeVuckovic/ledger-explorer/internal/dto"
	"github.com/DjordjeVuckovic/ledger-explorer/pkg/pagination"
)

// Named page envelopes for the OpenAPI document

type AccountPage pagination.OffsetResult[dto.AccountDTO]
type DomainPage pagination.OffsetResult[dto.DomainDTO]
type AssetPage pagination.OffsetResult[dto.AssetDTO]
type AssetDefinitionPage pagination.OffsetResult[dto.AssetDefinitionDTO]
type RolePage pagination.OffsetResult[dto.RoleDTO]
type PeerPage pagination.OffsetResult[dto.PeerDTO]

type ErrorResponse struct {
	Error string `json:"error" example:"not found"`
}

type BadRequestResponse struct {
	Error string `json:"error" example:"page_size must be an integer between 1 and 100"`
	Title string `json:"title" example:"bad request"`
}
