package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/apperr"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/dto"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/query"
	"github.com/labstack/echo/v4"
)

// listPeersHandler godoc
// @Summary List peers
// @Tags peer
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param page_size query int false "Items per page (1-100)" default(10)
// @Success 200 {object} PeerPage
// @Failure 400 {object} BadRequestResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/peer/peers [get]
func (r *LedgerRouter) listPeersHandler(c echo.Context) error {
	return listPage(c, r.adapter, query.FindAllPeers(), dto.PeerFromEntity)
}

// statusHandler godoc
// @Summary Peer status
// @Tags peer
// @Produce json
// @Success 200 {object} dto.StatusDTO
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/peer/status [get]
func (r *LedgerRouter) statusHandler(c echo.Context) error {
	status, f := r.adapter.Status(c.Request().Context())
	if f != nil {
		return apperr.Classify(f, apperr.ExpectAny)
	}
	return c.JSON(http.StatusOK, dto.StatusFromEntity(*status))
}
