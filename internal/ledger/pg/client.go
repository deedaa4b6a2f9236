// Package pg serves ledger snapshots mirrored into PostgreSQL.
package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// insufficient_privilege
	codeInsufficientPrivilege = "42501"

	countSQL  = `SELECT count(*) FROM ledger_entities WHERE kind = $1`
	windowSQL = `SELECT payload FROM ledger_entities WHERE kind = $1 ORDER BY id LIMIT $2 OFFSET $3`
	lookupSQL = `SELECT payload FROM ledger_entities WHERE kind = $1 AND id = $2`
	statusSQL = `SELECT peers, blocks, txs_accepted, txs_rejected, uptime_ms, view_changes FROM ledger_status WHERE id = 1`
)

type Client struct {
	pool    *ConnectionPool
	timeout time.Duration
}

// NewClient wraps the pool. A positive timeout bounds every call.
func NewClient(pool *ConnectionPool, timeout time.Duration) *Client {
	return &Client{pool: pool, timeout: timeout}
}

func (c *Client) Query(ctx context.Context, req ledger.Request, window *ledger.Window) (*ledger.Response, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if req.IsLookup() {
		return c.lookup(ctx, req)
	}

	slog.Debug("Executing pg ledger query", "kind", req.Kind, "windowed", window != nil)

	// count and page must observe the same snapshot
	tx, err := c.pool.conn.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, mapError(req, fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var total int64
	if err := tx.QueryRow(ctx, countSQL, string(req.Kind)).Scan(&total); err != nil {
		return nil, mapError(req, fmt.Errorf("failed to count entities: %w", err))
	}

	var limit, offset *int64
	if window != nil {
		l, o := int64(window.Limit), int64(window.Start)
		limit, offset = &l, &o
	}

	rows, err := tx.Query(ctx, windowSQL, string(req.Kind), limit, offset)
	if err != nil {
		return nil, mapError(req, fmt.Errorf("failed to execute query: %w", err))
	}
	defer rows.Close()

	items := make([]json.RawMessage, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, mapError(req, fmt.Errorf("failed to scan entity: %w", err))
		}
		items = append(items, payload)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(req, fmt.Errorf("error iterating rows: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapError(req, fmt.Errorf("failed to commit: %w", err))
	}

	return &ledger.Response{Items: items, Total: total}, nil
}

func (c *Client) lookup(ctx context.Context, req ledger.Request) (*ledger.Response, error) {
	var payload []byte
	err := c.pool.conn.QueryRow(ctx, lookupSQL, string(req.Kind), req.ID).Scan(&payload)
	if err != nil {
		return nil, mapError(req, err)
	}
	return &ledger.Response{Items: []json.RawMessage{payload}, Total: 1}, nil
}

func (c *Client) Status(ctx context.Context) (*ledger.Status, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var peers, blocks, accepted, rejected, uptime, viewChanges int64
	err := c.pool.conn.QueryRow(ctx, statusSQL).Scan(&peers, &blocks, &accepted, &rejected, &uptime, &viewChanges)
	if errors.Is(err, pgx.ErrNoRows) {
		return &ledger.Status{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}

	return &ledger.Status{
		Peers:       uint64(peers),
		Blocks:      uint64(blocks),
		TxsAccepted: uint64(accepted),
		TxsRejected: uint64(rejected),
		UptimeMs:    uint64(uptime),
		ViewChanges: uint64(viewChanges),
	}, nil
}

func (c *Client) Close() error {
	c.pool.Close()
	return nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// mapError turns database errors the ledger would report as query failures
// into *ledger.QueryError. Everything else is left as a transport error.
func mapError(req ledger.Request, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.NewFindError(req)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == codeInsufficientPrivilege {
			return ledger.NewQueryError(ledger.CodePermission, req, err)
		}
		return ledger.NewQueryError(ledger.CodeEvaluate, req, err)
	}

	return err
}
