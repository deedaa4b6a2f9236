package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "ledger-explorer"

type PoolConfig struct {
	ConnStr string

	// MaxConns caps the pool; zero keeps the pgxpool default
	MaxConns int32

	// ReadOnly makes every session default to read-only transactions
	ReadOnly bool
}

// ConnectionPool is the pgx pool shared by the ledger client, seeder and health checker
type ConnectionPool struct {
	conn *pgxpool.Pool
}

func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	poolCfg, err := cfg.parse()
	if err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping ledger mirror: %w", err)
	}

	slog.Info("Connected to ledger mirror",
		"host", poolCfg.ConnConfig.Host,
		"database", poolCfg.ConnConfig.Database,
		"max_conns", poolCfg.MaxConns,
		"read_only", cfg.ReadOnly)

	return &ConnectionPool{conn: dbpool}, nil
}

func (cfg PoolConfig) parse() (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	params := poolCfg.ConnConfig.RuntimeParams
	if _, ok := params["application_name"]; !ok {
		params["application_name"] = applicationName
	}
	if cfg.ReadOnly {
		params["default_transaction_read_only"] = "on"
	}

	return poolCfg, nil
}

func (p *ConnectionPool) Close() {
	p.conn.Close()
}
