package router

import (
	"github.com/DjordjeVuckovic/ledger-explorer/internal/dto"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/query"
	"github.com/labstack/echo/v4"
)

// listAssetsHandler godoc
// @Summary List assets
// @Tags assets
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param page_size query int false "Items per page (1-100)" default(10)
// @Success 200 {object} AssetPage
// @Failure 400 {object} BadRequestResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/assets [get]
func (r *LedgerRouter) listAssetsHandler(c echo.Context) error {
	return listPage(c, r.adapter, query.FindAllAssets(), dto.AssetFromEntity)
}

// getAssetHandler godoc
// @Summary Get the asset an account holds
// @Tags assets
// @Produce json
// @Param definition_id path string true "Asset definition id, e.g. rose#wonderland (url-encoded)"
// @Param account_id path string true "Account id, e.g. alice@wonderland"
// @Success 200 {object} dto.AssetDTO
// @Failure 400 {object} BadRequestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/assets/{definition_id}/{account_id} [get]
func (r *LedgerRouter) getAssetHandler(c echo.Context) error {
	defID, err := pathParam(c, "definition_id", ledger.ParseAssetDefinitionID)
	if err != nil {
		return err
	}
	accountID, err := pathParam(c, "account_id", ledger.ParseAccountID)
	if err != nil {
		return err
	}

	id := ledger.AssetID{DefinitionID: defID, AccountID: accountID}
	return showOne(c, r.adapter, query.FindAssetByID(id), dto.AssetFromEntity)
}
