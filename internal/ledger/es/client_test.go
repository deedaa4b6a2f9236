package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/fixture"
	pkgtesting "github.com/DjordjeVuckovic/ledger-explorer/pkg/testing"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortedIndex serves id-sorted hits the way a search with from or search_after does
type sortedIndex struct {
	ids      []string
	requests []fetchCall
}

type fetchCall struct {
	after      []types.FieldValue
	from, size int
}

func newSortedIndex(n int) *sortedIndex {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("domain%05d", i)
	}
	return &sortedIndex{ids: ids}
}

func (s *sortedIndex) fetch(_ context.Context, after []types.FieldValue, from, size int) ([]types.Hit, int64, error) {
	s.requests = append(s.requests, fetchCall{after: after, from: from, size: size})

	pos := from
	if len(after) > 0 {
		pos = sort.SearchStrings(s.ids, after[0].(string)) + 1
	}
	end := min(pos+size, len(s.ids))
	if pos > end {
		pos = end
	}

	hits := make([]types.Hit, 0, end-pos)
	for _, id := range s.ids[pos:end] {
		hits = append(hits, types.Hit{Sort: []types.FieldValue{id}})
	}
	return hits, int64(len(s.ids)), nil
}

func hitIDs(hits []types.Hit) []string {
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.Sort[0].(string))
	}
	return ids
}

func TestWalkWindow(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		window    *ledger.Window
		wantFirst string
		wantLen   int
		wantCalls int
	}{
		{name: "inside the batch", size: 25, window: &ledger.Window{Start: 4, Limit: 3}, wantFirst: "domain00004", wantLen: 3, wantCalls: 1},
		{name: "ends on the batch edge", size: 25, window: &ledger.Window{Start: 7, Limit: 3}, wantFirst: "domain00007", wantLen: 3, wantCalls: 1},
		{name: "straddles the batch edge", size: 25, window: &ledger.Window{Start: 8, Limit: 4}, wantFirst: "domain00008", wantLen: 4, wantCalls: 2},
		{name: "past the batch", size: 25, window: &ledger.Window{Start: 21, Limit: 3}, wantFirst: "domain00021", wantLen: 3, wantCalls: 4},
		{name: "partial last page", size: 25, window: &ledger.Window{Start: 22, Limit: 10}, wantFirst: "domain00022", wantLen: 3},
		{name: "beyond the end", size: 25, window: &ledger.Window{Start: 40, Limit: 10}},
		{name: "unwindowed", size: 25, wantFirst: "domain00000", wantLen: 25},
		{name: "unwindowed empty", size: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := newSortedIndex(tt.size)

			hits, total, err := walkWindow(context.Background(), tt.window, 10, idx.fetch)

			require.NoError(t, err)
			assert.Equal(t, int64(tt.size), total)
			require.Len(t, hits, tt.wantLen)
			if tt.wantLen > 0 {
				ids := hitIDs(hits)
				assert.Equal(t, tt.wantFirst, ids[0])
				assert.IsIncreasing(t, ids)
			}
			if tt.wantCalls > 0 {
				assert.Len(t, idx.requests, tt.wantCalls)
			}
			for _, call := range idx.requests {
				assert.LessOrEqual(t, call.from+call.size, 10, "from+size must stay inside the result window")
			}
		})
	}
}

func TestWalkWindow_DeepPageReturnsItems(t *testing.T) {
	idx := newSortedIndex(maxResultWindow + 250)

	hits, total, err := walkWindow(context.Background(), &ledger.Window{Start: maxResultWindow, Limit: 100}, maxResultWindow, idx.fetch)

	require.NoError(t, err)
	assert.Equal(t, int64(maxResultWindow+250), total)
	require.Len(t, hits, 100)
	assert.Equal(t, fmt.Sprintf("domain%05d", maxResultWindow), hitIDs(hits)[0])
	for _, call := range idx.requests {
		assert.LessOrEqual(t, call.from+call.size, maxResultWindow)
	}
}

func TestWalkWindow_PropagatesFetchError(t *testing.T) {
	boom := errors.New("connection refused")
	calls := 0
	fetch := func(_ context.Context, _ []types.FieldValue, _, size int) ([]types.Hit, int64, error) {
		calls++
		if calls == 2 {
			return nil, 0, boom
		}
		hits := make([]types.Hit, size)
		for i := range hits {
			hits[i] = types.Hit{Sort: []types.FieldValue{fmt.Sprintf("id%03d", i)}}
		}
		return hits, 100, nil
	}

	_, _, err := walkWindow(context.Background(), &ledger.Window{Start: 15, Limit: 5}, 10, fetch)
	assert.ErrorIs(t, err, boom)
}

func TestWalkWindow_HitsWithoutSortValues(t *testing.T) {
	fetch := func(_ context.Context, _ []types.FieldValue, _, size int) ([]types.Hit, int64, error) {
		return make([]types.Hit, size), 100, nil
	}

	_, _, err := walkWindow(context.Background(), &ledger.Window{Start: 15, Limit: 5}, 10, fetch)
	assert.ErrorIs(t, err, errMissingSortValues)
}

func TestClientConfig_TransportConfig(t *testing.T) {
	addrs := []string{"http://localhost:9200"}

	cfg, err := ClientConfig{Addresses: addrs, Username: "elastic", Password: "secret"}.transportConfig()
	require.NoError(t, err)
	assert.True(t, cfg.DisableRetry)
	assert.Equal(t, "elastic", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)

	cfg, err = ClientConfig{Addresses: addrs, Username: "elastic"}.transportConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.Username, "username without password is ignored")

	cfg, err = ClientConfig{Addresses: addrs, APIKey: "a2V5"}.transportConfig()
	require.NoError(t, err)
	assert.Equal(t, "a2V5", cfg.APIKey)

	_, err = ClientConfig{Addresses: addrs, APIKey: "a2V5", Username: "elastic"}.transportConfig()
	assert.Error(t, err)

	_, err = ClientConfig{}.transportConfig()
	assert.Error(t, err)
}

func TestMapError(t *testing.T) {
	req := ledger.Request{Kind: ledger.KindDomain}

	tests := []struct {
		name     string
		status   int
		wantCode ledger.ErrorCode
		wantRaw  bool
	}{
		{name: "forbidden", status: 403, wantCode: ledger.CodePermission},
		{name: "bad request", status: 400, wantCode: ledger.CodeEvaluate},
		{name: "missing index", status: 404, wantCode: ledger.CodeEvaluate},
		{name: "unavailable", status: 503, wantRaw: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &types.ElasticsearchError{Status: tt.status}
			err := mapError(req, src)

			if tt.wantRaw {
				assert.Same(t, error(src), err)
				return
			}
			var qe *ledger.QueryError
			require.True(t, errors.As(err, &qe))
			assert.Equal(t, tt.wantCode, qe.Code)
		})
	}

	t.Run("network error", func(t *testing.T) {
		netErr := errors.New("dial tcp: connection refused")
		assert.Same(t, netErr, mapError(req, netErr))
	})
}

func TestFiltersFor(t *testing.T) {
	assert.Len(t, filtersFor(ledger.Request{Kind: ledger.KindRole}), 1)

	lookup := filtersFor(ledger.Request{Kind: ledger.KindRole, ID: "admin"})
	require.Len(t, lookup, 2)
	assert.Equal(t, "admin", lookup[1].Term["id"].Value)
}

func TestClient_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch integration test in short mode")
	}

	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)
	cfg := ClientConfig{Addresses: []string{container.Address}, IndexName: "ledger_test"}

	records := make([]fixture.Record, 15)
	for i := range records {
		id := fmt.Sprintf("domain%02d", i+1)
		records[i] = fixture.Record{
			Kind:    ledger.KindDomain,
			ID:      id,
			Payload: json.RawMessage(fmt.Sprintf(`{"id":%q,"accounts":[],"metadata":{},"asset_definitions":[]}`, id)),
		}
	}

	indexer, err := NewIndexer(cfg)
	require.NoError(t, err)
	require.NoError(t, indexer.Seed(ctx, records, &ledger.Status{Peers: 3, Blocks: 7}))

	client, err := NewClient(cfg, 10*time.Second)
	require.NoError(t, err)

	res, err := client.Query(ctx, ledger.Request{Kind: ledger.KindDomain}, &ledger.Window{Start: 10, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(15), res.Total)
	require.Len(t, res.Items, 5)

	var d ledger.Domain
	require.NoError(t, json.Unmarshal(res.Items[0], &d))
	assert.Equal(t, ledger.DomainID("domain11"), d.ID)

	res, err = client.Query(ctx, ledger.Request{Kind: ledger.KindDomain, ID: "domain02"}, nil)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	_, err = client.Query(ctx, ledger.Request{Kind: ledger.KindDomain, ID: "atlantis"}, nil)
	var qe *ledger.QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, ledger.CodeFind, qe.Code)

	status, err := client.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), status.Blocks)

	assert.True(t, NewHealthChecker(client).Healthy(ctx))
}
