package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name    string
		handler echo.HandlerFunc
		wantMsg string
	}{
		{
			name:    "success",
			handler: func(c echo.Context) error { return c.String(http.StatusOK, "ok") },
			wantMsg: "msg=REQUEST ",
		},
		{
			name:    "error",
			handler: func(c echo.Context) error { return errors.New("boom") },
			wantMsg: "msg=REQUEST_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			e := echo.New()
			e.Use(Logger())
			e.GET("/api/v1/roles", tt.handler)

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/roles", nil))

			assert.Contains(t, logs.String(), tt.wantMsg)
			assert.Contains(t, logs.String(), "uri=/api/v1/roles")
			assert.Contains(t, logs.String(), "method=GET")
		})
	}
}

func TestLogger_Skipper(t *testing.T) {
	logs := captureLogs(t)

	e := echo.New()
	e.Use(Logger(WithSkipper(func(c echo.Context) bool { return c.Path() == "/health" })))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, logs.String())
}
