package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/fixture"
	"github.com/jackc/pgx/v5"
)

// Seeder replaces the mirrored snapshot with a new one
type Seeder struct {
	pool *ConnectionPool
}

func NewSeeder(pool *ConnectionPool) *Seeder {
	return &Seeder{pool: pool}
}

func (s *Seeder) Seed(ctx context.Context, records []fixture.Record, status *ledger.Status) error {
	tx, err := s.pool.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE ledger_entities`); err != nil {
		return fmt.Errorf("failed to truncate entities: %w", err)
	}

	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{string(r.Kind), r.ID, r.Payload}
	}

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"ledger_entities"},
		[]string{"kind", "id", "payload"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy entities: %w", err)
	}

	if status != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO ledger_status (id, peers, blocks, txs_accepted, txs_rejected, uptime_ms, view_changes)
			VALUES (1, $1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				peers = EXCLUDED.peers,
				blocks = EXCLUDED.blocks,
				txs_accepted = EXCLUDED.txs_accepted,
				txs_rejected = EXCLUDED.txs_rejected,
				uptime_ms = EXCLUDED.uptime_ms,
				view_changes = EXCLUDED.view_changes
		`,
			int64(status.Peers),
			int64(status.Blocks),
			int64(status.TxsAccepted),
			int64(status.TxsRejected),
			int64(status.UptimeMs),
			int64(status.ViewChanges),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert status: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	slog.Info("Seeded pg ledger snapshot", "entities", copied)
	return nil
}
