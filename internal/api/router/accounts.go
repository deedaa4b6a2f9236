package router

import (
	"github.com/DjordjeVuckovic/ledger-explorer/internal/dto"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/query"
	"github.com/labstack/echo/v4"
)

// listAccountsHandler godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param page_size query int false "Items per page (1-100)" default(10)
// @Success 200 {object} AccountPage
// @Failure 400 {object} BadRequestResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/accounts [get]
func (r *LedgerRouter) listAccountsHandler(c echo.Context) error {
	return listPage(c, r.adapter, query.FindAllAccounts(), dto.AccountFromEntity)
}

// getAccountHandler godoc
// @Summary Get account by id
// @Tags accounts
// @Produce json
// @Param id path string true "Account id, e.g. alice@wonderland"
// @Success 200 {object} dto.AccountDTO
// @Failure 400 {object} BadRequestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/accounts/{id} [get]
func (r *LedgerRouter) getAccountHandler(c echo.Context) error {
	id, err := pathParam(c, "id", ledger.ParseAccountID)
	if err != nil {
		return err
	}
	return showOne(c, r.adapter, query.FindAccountByID(id), dto.AccountFromEntity)
}
