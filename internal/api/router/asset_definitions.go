package router

import (
	"github.com/DjordjeVuckovic/ledger-explorer/internal/dto"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/query"
	"github.com/labstack/echo/v4"
)

// listAssetDefinitionsHandler godoc
// @Summary List asset definitions
// @Tags asset-definitions
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param page_size query int false "Items per page (1-100)" default(10)
// @Success 200 {object} AssetDefinitionPage
// @Failure 400 {object} BadRequestResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/asset-definitions [get]
func (r *LedgerRouter) listAssetDefinitionsHandler(c echo.Context) error {
	return listPage(c, r.adapter, query.FindAllAssetDefinitions(), dto.AssetDefinitionFromEntity)
}

// getAssetDefinitionHandler godoc
// @Summary Get asset definition by id
// @Tags asset-definitions
// @Produce json
// @Param id path string true "Asset definition id, e.g. rose#wonderland (url-encoded)"
// @Success 200 {object} dto.AssetDefinitionDTO
// @Failure 400 {object} BadRequestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/asset-definitions/{id} [get]
func (r *LedgerRouter) getAssetDefinitionHandler(c echo.Context) error {
	id, err := pathParam(c, "id", ledger.ParseAssetDefinitionID)
	if err != nil {
		return err
	}
	return showOne(c, r.adapter, query.FindAssetDefinitionByID(id), dto.AssetDefinitionFromEntity)
}
