// ledger_seed loads a YAML ledger fixture into the PostgreSQL or
// Elasticsearch mirror served by ledger_api.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/es"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/fixture"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/pg"
	"github.com/DjordjeVuckovic/ledger-explorer/pkg/stringsutil"
)

type seeder interface {
	Seed(ctx context.Context, records []fixture.Record, status *ledger.Status) error
}

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		slog.Error("Seeding failed", "backend", cfg.Backend, "fixture", cfg.FixturePath, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig) error {
	f, err := fixture.LoadFile(cfg.FixturePath)
	if err != nil {
		return err
	}

	records, err := f.Records()
	if err != nil {
		return fmt.Errorf("invalid fixture: %w", err)
	}

	var s seeder
	switch cfg.Backend {
	case "pg":
		pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: cfg.PgConnStr})
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer pool.Close()
		s = pg.NewSeeder(pool)
	case "es":
		indexer, err := es.NewIndexer(es.ClientConfig{
			Addresses: stringsutil.SplitList(cfg.EsAddresses),
			IndexName: cfg.EsIndex,
			Username:  cfg.EsUsername,
			Password:  cfg.EsPassword,
			APIKey:    cfg.EsAPIKey,
		})
		if err != nil {
			return fmt.Errorf("failed to create Elasticsearch indexer: %w", err)
		}
		s = indexer
	default:
		return fmt.Errorf("unsupported backend %q", cfg.Backend)
	}

	if err := s.Seed(ctx, records, f.Status); err != nil {
		return err
	}

	slog.Info("Seeding completed", "backend", cfg.Backend, "records", len(records), "fixture", cfg.FixturePath)
	return nil
}
