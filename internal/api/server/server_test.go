package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/apperr"
	pkgserver "github.com/DjordjeVuckovic/ledger-explorer/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *Config, hc pkgserver.HealthChecker) *Server {
	t.Helper()
	s := New(cfg, hc).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")
	t.Cleanup(s.Shutdown)
	return s
}

func do(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "10.0.0.1:4321"
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func defaultConfig() *Config {
	return &Config{Port: "8080", CorsOrigins: []string{"*"}, LogLevel: "info"}
}

func TestServer_HealthChecks(t *testing.T) {
	tests := []struct {
		name       string
		checker    pkgserver.HealthChecker
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", checker: pkgserver.NewOkHealthChecker(), wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "unhealthy", checker: pkgserver.HealthCheckerFunc(func(context.Context) bool { return false }), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable"}`},
		{name: "no checker", checker: nil, wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newTestServer(t, defaultConfig(), tt.checker), "/health")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestServer_RequestIDAndTrailingSlash(t *testing.T) {
	s := newTestServer(t, defaultConfig(), pkgserver.NewOkHealthChecker())
	s.Echo.GET("/api/v1/roles", func(c echo.Context) error { return c.String(http.StatusOK, "roles") })

	rec := do(s, "/api/v1/roles/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestServer_UnknownRouteUsesErrorHandler(t *testing.T) {
	rec := do(newTestServer(t, defaultConfig(), nil), "/api/v1/triggers")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestServer_RateLimit(t *testing.T) {
	cfg := defaultConfig()
	cfg.RateLimitRPS = 1

	s := newTestServer(t, cfg, pkgserver.NewOkHealthChecker())
	s.Echo.GET("/api/v1/peer/status", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	assert.Equal(t, http.StatusOK, do(s, "/api/v1/peer/status").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(s, "/api/v1/peer/status").Code)

	// operational endpoints stay reachable
	assert.Equal(t, http.StatusOK, do(s, "/health").Code)
	assert.Equal(t, http.StatusOK, do(s, "/health").Code)
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t, defaultConfig(), nil)
	s.SetupMetrics("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("up 1\n"))
	}))

	rec := do(s, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up 1\n", rec.Body.String())
}

func TestServer_ErrorHandlerOptions(t *testing.T) {
	counter := &kindCounter{}
	s := New(defaultConfig(), nil).SetupErrorHandler(apperr.WithFailureCounter(counter))
	t.Cleanup(s.Shutdown)
	s.Echo.GET("/boom", func(c echo.Context) error { return apperr.NewNotFound() })

	rec := do(s, "/boom")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []apperr.Kind{apperr.KindNotFound}, counter.kinds)
}

func TestServer_ShutdownSignal(t *testing.T) {
	s := New(defaultConfig(), nil)

	select {
	case <-s.ShutdownSignal():
		t.Fatal("shutdown signalled before Shutdown")
	default:
	}

	s.Shutdown()
	<-s.ShutdownSignal()
	require.Error(t, s.Context().Err())
}

type kindCounter struct {
	kinds []apperr.Kind
}

func (c *kindCounter) CountFailure(kind apperr.Kind) {
	c.kinds = append(c.kinds, kind)
}
