package router

import (
	"github.com/DjordjeVuckovic/ledger-explorer/internal/dto"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/query"
	"github.com/labstack/echo/v4"
)

// listRolesHandler godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param page_size query int false "Items per page (1-100)" default(10)
// @Success 200 {object} RolePage
// @Failure 400 {object} BadRequestResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/roles [get]
func (r *LedgerRouter) listRolesHandler(c echo.Context) error {
	return listPage(c, r.adapter, query.FindAllRoles(), dto.RoleFromEntity)
}
