// Package main Ledger Explorer API
// @title Ledger Explorer API
// @version 1.0
// @description Read-only REST gateway over a remote ledger
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/ledger-explorer/docs"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/api/metrics"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/api/router"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/api/server"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/apperr"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/factory"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/query"
)

const startupTimeout = 30 * time.Second

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.Server.SlogLevel())

	recorder := metrics.NewRecorder()

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	l, err := factory.NewLedger(startupCtx, cfg.Ledger)
	cancel()
	if err != nil {
		slog.Error("Failed to create ledger client", "backend", cfg.Ledger.Backend, "error", err)
		os.Exit(1)
	}

	s := server.New(cfg.Server, l.HealthChecker).
		SetupMiddlewares().
		SetupErrorHandler(apperr.WithFailureCounter(recorder)).
		SetupHealthChecks("/health").
		SetupMetrics("/metrics", recorder.Handler()).
		SetupOpenApi("/swagger/*")

	adapter := query.NewAdapter(l.Client,
		query.WithCancelOnDisconnect(cfg.Ledger.CancelOnDisconnect),
		query.WithRecorder(recorder),
	)

	ledgerRouter := router.NewLedgerRouter(s.Echo, adapter)
	ledgerRouter.Bind()

	slog.Info("Ledger explorer configured",
		"backend", cfg.Ledger.Backend,
		"query_timeout", cfg.Ledger.QueryTimeout,
		"cancel_on_disconnect", cfg.Ledger.CancelOnDisconnect)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := serve(s.Start, l.Client); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// serve blocks in start and releases the ledger client however start returns
func serve(start func() error, client io.Closer) error {
	startErr := start()
	if err := client.Close(); err != nil {
		slog.Error("Failed to close ledger client", "error", err)
	}
	return startErr
}
