package router

import (
	"net/http"
	"net/url"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/apperr"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/query"
	"github.com/DjordjeVuckovic/ledger-explorer/pkg/pagination"
	"github.com/labstack/echo/v4"
)

const (
	BasePath = "/api/v1"
	Welcome  = "Welcome to Ledger Explorer!"
)

// LedgerRouter serves read-only views of ledger entities
type LedgerRouter struct {
	e       *echo.Echo
	adapter *query.Adapter
}

func NewLedgerRouter(e *echo.Echo, adapter *query.Adapter) *LedgerRouter {
	return &LedgerRouter{
		e:       e,
		adapter: adapter,
	}
}

func (r *LedgerRouter) Bind() {
	g := r.e.Group(BasePath)

	g.GET("", r.welcomeHandler)

	g.GET("/accounts", r.listAccountsHandler)
	g.GET("/accounts/:id", r.getAccountHandler)

	g.GET("/domains", r.listDomainsHandler)
	g.GET("/domains/:id", r.getDomainHandler)

	g.GET("/assets", r.listAssetsHandler)
	g.GET("/assets/:definition_id/:account_id", r.getAssetHandler)

	g.GET("/asset-definitions", r.listAssetDefinitionsHandler)
	g.GET("/asset-definitions/:id", r.getAssetDefinitionHandler)

	g.GET("/roles", r.listRolesHandler)

	g.GET("/peer/peers", r.listPeersHandler)
	g.GET("/peer/status", r.statusHandler)
}

// welcomeHandler godoc
// @Summary Welcome message
// @Tags meta
// @Produce plain
// @Success 200 {string} string "Welcome to Ledger Explorer!"
// @Router /api/v1 [get]
func (r *LedgerRouter) welcomeHandler(c echo.Context) error {
	return c.String(http.StatusOK, Welcome)
}

// listPage parses the page window, runs q over it and wraps the projected
// items in the page envelope.
func listPage[R any, T any](c echo.Context, a *query.Adapter, q query.Query[R], project func(R) (T, error)) error {
	cursor, err := pagination.ParseOffsetRequest(
		c.QueryParam(pagination.QueryParamPage),
		c.QueryParam(pagination.QueryParamPageSize),
	)
	if err != nil {
		return apperr.NewBadRequestWrap(err.Error(), err)
	}

	raw, f := query.Execute(c.Request().Context(), a, q, &cursor)
	if f != nil {
		return apperr.Classify(f, apperr.ExpectAny)
	}

	page, err := pagination.NewOffsetResult(cursor, raw.Items, raw.TotalCount, project)
	if err != nil {
		return apperr.NewInternal(err)
	}

	return c.JSON(http.StatusOK, page)
}

// showOne runs a single-entity lookup; a missing entity becomes a 404
func showOne[R any, T any](c echo.Context, a *query.Adapter, q query.Query[R], project func(R) (T, error)) error {
	item, f := query.ExecuteOne(c.Request().Context(), a, q)
	if f != nil {
		return apperr.Classify(f, apperr.ExpectFind)
	}

	out, err := project(*item)
	if err != nil {
		return apperr.NewInternal(err)
	}

	return c.JSON(http.StatusOK, out)
}

// pathParam returns the decoded path parameter, parsed with parse.
// Echo matches on URL.RawPath when the request carries one, and those
// params are still escaped.
func pathParam[T any](c echo.Context, name string, parse func(string) (T, error)) (T, error) {
	var zero T

	raw := c.Param(name)
	if c.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(raw)
		if err != nil {
			return zero, apperr.NewValidationWrap("malformed path parameter "+name, err)
		}
		raw = unescaped
	}

	v, err := parse(raw)
	if err != nil {
		return zero, apperr.NewValidationWrap("malformed path parameter "+name, err)
	}
	return v, nil
}
