package pg

import (
	"context"
	"log/slog"
)

const schemaCheckSQL = `SELECT to_regclass('ledger_entities') IS NOT NULL AND to_regclass('ledger_status') IS NOT NULL`

// HealthChecker reports healthy once the mirror is reachable and migrated
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	var migrated bool
	if err := hc.pool.conn.QueryRow(ctx, schemaCheckSQL).Scan(&migrated); err != nil {
		slog.Warn("Ledger mirror health check failed", "error", err)
		return false
	}
	if !migrated {
		slog.Warn("Ledger mirror is missing its schema")
	}
	return migrated
}
