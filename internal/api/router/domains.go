package router

import (
	"github.com/DjordjeVuckovic/ledger-explorer/internal/dto"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/query"
	"github.com/labstack/echo/v4"
)

// listDomainsHandler godoc
// @Summary List domains
// @Tags domains
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param page_size query int false "Items per page (1-100)" default(10)
// @Success 200 {object} DomainPage
// @Failure 400 {object} BadRequestResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/domains [get]
func (r *LedgerRouter) listDomainsHandler(c echo.Context) error {
	return listPage(c, r.adapter, query.FindAllDomains(), dto.DomainFromEntity)
}

// getDomainHandler godoc
// @Summary Get domain by id
// @Tags domains
// @Produce json
// @Param id path string true "Domain id, e.g. wonderland"
// @Success 200 {object} dto.DomainDTO
// @Failure 400 {object} BadRequestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/domains/{id} [get]
func (r *LedgerRouter) getDomainHandler(c echo.Context) error {
	id, err := pathParam(c, "id", ledger.ParseDomainID)
	if err != nil {
		return err
	}
	return showOne(c, r.adapter, query.FindDomainByID(id), dto.DomainFromEntity)
}
