package es

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// fetchFunc runs one id-sorted search. after holds the sort values of the
// last hit already seen; from is only used when after is empty.
type fetchFunc func(ctx context.Context, after []types.FieldValue, from, size int) ([]types.Hit, int64, error)

var errMissingSortValues = errors.New("search hit carries no sort values")

// walkWindow collects the hits of window. Windows that fit inside batch are
// served by a single from/size search; deeper ones walk search_after in
// batch-sized steps. A nil window collects every hit.
func walkWindow(ctx context.Context, window *ledger.Window, batch int, fetch fetchFunc) ([]types.Hit, int64, error) {
	start, limit := 0, -1
	if window != nil {
		start, limit = window.Start, window.Limit
	}

	if limit >= 0 && start+limit <= batch {
		return fetch(ctx, nil, start, limit)
	}

	var (
		after   []types.FieldValue
		total   int64
		counted bool
	)
	next := func(size int) ([]types.Hit, error) {
		hits, t, err := fetch(ctx, after, 0, size)
		if err != nil {
			return nil, err
		}
		if !counted {
			total, counted = t, true
		}
		if len(hits) > 0 {
			last := hits[len(hits)-1].Sort
			if len(last) == 0 {
				return nil, errMissingSortValues
			}
			after = last
		}
		return hits, nil
	}

	for start > 0 {
		n := min(start, batch)
		hits, err := next(n)
		if err != nil {
			return nil, 0, err
		}
		if len(hits) < n {
			return []types.Hit{}, total, nil
		}
		start -= n
	}

	hits := make([]types.Hit, 0)
	for limit != 0 {
		n := batch
		if limit > 0 && limit < n {
			n = limit
		}
		page, err := next(n)
		if err != nil {
			return nil, 0, err
		}
		hits = append(hits, page...)
		if limit > 0 {
			limit -= len(page)
		}
		if len(page) < n {
			break
		}
	}

	return hits, total, nil
}
