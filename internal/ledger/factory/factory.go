package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/es"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/fixture"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/inmem"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/pg"
	"github.com/DjordjeVuckovic/ledger-explorer/pkg/server"
)

// Ledger is a configured client together with the checker backing /health
type Ledger struct {
	Client        ledger.Client
	HealthChecker server.HealthChecker
}

// NewLedger creates the ledger client for the configured backend
func NewLedger(ctx context.Context, cfg *Config) (*Ledger, error) {
	switch cfg.Backend {
	case PG:
		pool, err := pg.NewConnectionPool(ctx, cfg.PgConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &Ledger{
			Client:        pg.NewClient(pool, cfg.QueryTimeout),
			HealthChecker: pg.NewHealthChecker(pool),
		}, nil

	case ES:
		client, err := es.NewClient(cfg.EsConfig(), cfg.QueryTimeout)
		if err != nil {
			return nil, err
		}
		return &Ledger{
			Client:        client,
			HealthChecker: es.NewHealthChecker(client),
		}, nil

	case InMem:
		f, err := fixture.LoadFile(cfg.FixturePath)
		if err != nil {
			return nil, err
		}
		client, err := inmem.NewClientFromFixture(f)
		if err != nil {
			return nil, fmt.Errorf("invalid fixture %s: %w", cfg.FixturePath, err)
		}
		slog.Info("Loaded in-memory ledger", "fixture", cfg.FixturePath)
		return &Ledger{
			Client:        client,
			HealthChecker: ledger.NewHealthChecker(client),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported ledger backend %q", cfg.Backend)
	}
}
