package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/pkg/pagination"
)

// RawResult is one decoded ledger answer
type RawResult[R any] struct {
	Items      []R
	TotalCount int64
}

// Recorder observes ledger calls. Outcome is "ok" or a FailureKind name.
type Recorder interface {
	ObserveQuery(kind ledger.Kind, outcome string, elapsed time.Duration)
}

// Adapter executes typed queries against the shared ledger client.
// Failed calls are never retried: the ledger may change between attempts and
// a re-run window could skip or repeat entities.
type Adapter struct {
	client             ledger.Client
	cancelOnDisconnect bool
	recorder           Recorder
}

type Option func(*Adapter)

// WithCancelOnDisconnect lets a client disconnect abort the in-flight ledger query.
// By default the query runs to completion and its result is discarded.
func WithCancelOnDisconnect(enabled bool) Option {
	return func(a *Adapter) {
		a.cancelOnDisconnect = enabled
	}
}

func WithRecorder(r Recorder) Option {
	return func(a *Adapter) {
		a.recorder = r
	}
}

func NewAdapter(client ledger.Client, opts ...Option) *Adapter {
	a := &Adapter{client: client}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs q, windowed by cursor when it is not nil
func Execute[R any](ctx context.Context, a *Adapter, q Query[R], cursor *pagination.Cursor) (*RawResult[R], *Failure) {
	req := q.Request()

	var window *ledger.Window
	if cursor != nil {
		window = &ledger.Window{Start: cursor.Start(), Limit: cursor.PageSize()}
	}

	resp, f := a.query(ctx, req, window)
	if f != nil {
		return nil, f
	}

	items := make([]R, 0, len(resp.Items))
	for i, payload := range resp.Items {
		var item R
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, &Failure{
				Kind: FailureTransport,
				Err:  fmt.Errorf("malformed %s payload at position %d: %w", req.Kind, i, err),
			}
		}
		items = append(items, item)
	}

	return &RawResult[R]{Items: items, TotalCount: resp.Total}, nil
}

// ExecuteOne runs an unwindowed lookup that must yield exactly one entity
func ExecuteOne[R any](ctx context.Context, a *Adapter, q Query[R]) (*R, *Failure) {
	res, f := Execute(ctx, a, q, nil)
	if f != nil {
		return nil, f
	}

	switch len(res.Items) {
	case 0:
		return nil, &Failure{Kind: FailureFind, Err: ledger.NewFindError(q.Request())}
	case 1:
		return &res.Items[0], nil
	default:
		return nil, &Failure{
			Kind: FailureQuery,
			Err:  fmt.Errorf("lookup of %s %q matched %d entities", q.Request().Kind, q.Request().ID, len(res.Items)),
		}
	}
}

// Status forwards the ledger status query
func (a *Adapter) Status(ctx context.Context) (*ledger.Status, *Failure) {
	status, err := a.client.Status(a.detach(ctx))
	if err != nil {
		return nil, failureFrom(err)
	}
	return status, nil
}

func (a *Adapter) query(ctx context.Context, req ledger.Request, window *ledger.Window) (*ledger.Response, *Failure) {
	start := time.Now()

	resp, err := a.client.Query(a.detach(ctx), req, window)

	var f *Failure
	switch {
	case err != nil:
		f = failureFrom(err)
	case resp == nil:
		f = &Failure{Kind: FailureTransport, Err: fmt.Errorf("empty response for %s query", req.Kind)}
	}

	outcome := "ok"
	if f != nil {
		outcome = f.Kind.String()
		slog.Debug("Ledger query failed", "kind", req.Kind, "id", req.ID, "failure", outcome, "error", f.Err)
	}
	if a.recorder != nil {
		a.recorder.ObserveQuery(req.Kind, outcome, time.Since(start))
	}

	return resp, f
}

func (a *Adapter) detach(ctx context.Context) context.Context {
	if a.cancelOnDisconnect {
		return ctx
	}
	return context.WithoutCancel(ctx)
}
