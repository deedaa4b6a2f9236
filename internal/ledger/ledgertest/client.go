// Package ledgertest provides a scriptable ledger.Client for tests.
package ledgertest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
)

// Call records one Query invocation
type Call struct {
	Request   ledger.Request
	Window    *ledger.Window
	Cancelled bool
}

// Client answers queries with QueryFunc and StatusFunc and records every call
type Client struct {
	QueryFunc  func(ctx context.Context, req ledger.Request, window *ledger.Window) (*ledger.Response, error)
	StatusFunc func(ctx context.Context) (*ledger.Status, error)

	mu    sync.Mutex
	calls []Call
}

func (c *Client) Query(ctx context.Context, req ledger.Request, window *ledger.Window) (*ledger.Response, error) {
	c.mu.Lock()
	c.calls = append(c.calls, Call{Request: req, Window: window, Cancelled: ctx.Err() != nil})
	c.mu.Unlock()

	if c.QueryFunc == nil {
		return &ledger.Response{}, nil
	}
	return c.QueryFunc(ctx, req, window)
}

func (c *Client) Status(ctx context.Context) (*ledger.Status, error) {
	if c.StatusFunc == nil {
		return &ledger.Status{}, nil
	}
	return c.StatusFunc(ctx)
}

func (c *Client) Close() error {
	return nil
}

func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

func (c *Client) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Respond returns a QueryFunc that always answers with the given items and total
func Respond(total int64, items ...any) func(context.Context, ledger.Request, *ledger.Window) (*ledger.Response, error) {
	raw := MustRaw(items...)
	return func(context.Context, ledger.Request, *ledger.Window) (*ledger.Response, error) {
		return &ledger.Response{Items: raw, Total: total}, nil
	}
}

// Fail returns a QueryFunc that always fails with err
func Fail(err error) func(context.Context, ledger.Request, *ledger.Window) (*ledger.Response, error) {
	return func(context.Context, ledger.Request, *ledger.Window) (*ledger.Response, error) {
		return nil, err
	}
}

// MustRaw marshals each item to JSON and panics on failure
func MustRaw(items ...any) []json.RawMessage {
	raw := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		if b, ok := item.(string); ok {
			raw = append(raw, json.RawMessage(b))
			continue
		}
		b, err := json.Marshal(item)
		if err != nil {
			panic(err)
		}
		raw = append(raw, b)
	}
	return raw
}
