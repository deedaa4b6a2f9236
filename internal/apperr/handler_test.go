package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCounter struct {
	counts map[Kind]int
}

func (c *countingCounter) CountFailure(kind Kind) {
	c.counts[kind]++
}

func serve(t *testing.T, handlerErr error, opts ...HandlerOpt) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = GlobalErrorHandler(opts...)
	e.GET("/", func(c echo.Context) error { return handlerErr })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGlobalErrorHandler_BadRequest(t *testing.T) {
	rec, body := serve(t, NewBadRequest("page_size must be an integer between 1 and 100"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "page_size must be an integer between 1 and 100", body["error"])
	assert.Equal(t, "bad request", body["title"])
}

func TestGlobalErrorHandler_NotFound(t *testing.T) {
	rec, body := serve(t, NewNotFound())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]string{"error": "not found"}, body)
}

func TestGlobalErrorHandler_InternalHidesCause(t *testing.T) {
	rec, body := serve(t, NewInternal(errors.New("pq: password authentication failed for user ledger")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]string{"error": "internal server error"}, body)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGlobalErrorHandler_PlainError(t *testing.T) {
	counter := &countingCounter{counts: map[Kind]int{}}
	rec, body := serve(t, errors.New("boom"), WithFailureCounter(counter))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", body["error"])
	assert.Equal(t, 1, counter.counts[KindInternal])
}

func TestGlobalErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := serve(t, echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded"))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate limit exceeded", body["error"])
}

func TestGlobalErrorHandler_UnknownRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = GlobalErrorHandler()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestGlobalErrorHandler_CountsKinds(t *testing.T) {
	counter := &countingCounter{counts: map[Kind]int{}}

	serve(t, NewBadRequest("x"), WithFailureCounter(counter))
	serve(t, NewNotFound(), WithFailureCounter(counter))
	serve(t, NewInternal(errors.New("y")), WithFailureCounter(counter))

	assert.Equal(t, map[Kind]int{KindBadRequest: 1, KindNotFound: 1, KindInternal: 1}, counter.counts)
}

func TestGlobalErrorHandler_ValidationError(t *testing.T) {
	counter := &countingCounter{counts: map[Kind]int{}}
	rec, body := serve(t, NewValidationWrap("invalid account id", errors.New("missing @")), WithFailureCounter(counter))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid account id: missing @", body["error"])
	assert.Equal(t, "bad request", body["title"])
	assert.Equal(t, 1, counter.counts[KindBadRequest])
}
