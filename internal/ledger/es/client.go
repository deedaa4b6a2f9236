// Package es serves ledger snapshots mirrored into Elasticsearch.
package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

type Client struct {
	client    *elasticsearch.TypedClient
	indexName string
	timeout   time.Duration
}

// NewClient connects to the cluster. A positive timeout bounds every call.
func NewClient(config ClientConfig, timeout time.Duration) (*Client, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Client{
		client:    client,
		indexName: config.IndexName,
		timeout:   timeout,
	}, nil
}

func (c *Client) Query(ctx context.Context, req ledger.Request, window *ledger.Window) (*ledger.Response, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	hits, total, err := walkWindow(ctx, window, maxResultWindow, func(ctx context.Context, after []types.FieldValue, from, size int) ([]types.Hit, int64, error) {
		return c.search(ctx, req, after, from, size)
	})
	if err != nil {
		return nil, mapError(req, err)
	}

	items := make([]json.RawMessage, 0, len(hits))
	for _, hit := range hits {
		var doc document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		items = append(items, doc.Payload)
	}

	if req.IsLookup() && len(items) == 0 {
		return nil, ledger.NewFindError(req)
	}

	return &ledger.Response{Items: items, Total: total}, nil
}

func (c *Client) search(ctx context.Context, req ledger.Request, after []types.FieldValue, from, size int) ([]types.Hit, int64, error) {
	slog.Debug("Executing es ledger query", "kind", req.Kind, "id", req.ID, "from", from, "size", size, "search_after", after)

	search := c.client.Search().
		Index(c.indexName).
		Query(&types.Query{
			Bool: &types.BoolQuery{Filter: filtersFor(req)},
		}).
		Size(size).
		TrackTotalHits(true).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"id": {Order: &sortorder.Asc},
			},
		})
	if len(after) > 0 {
		search = search.SearchAfter(after...)
	} else {
		search = search.From(from)
	}

	res, err := search.Do(ctx)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return res.Hits.Hits, total, nil
}

func (c *Client) Status(ctx context.Context) (*ledger.Status, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.client.Get(c.indexName, statusDocID).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return &ledger.Status{}, nil
		}
		return nil, fmt.Errorf("failed to read status: %w", err)
	}
	if !res.Found {
		return &ledger.Status{}, nil
	}

	var doc document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode status document: %w", err)
	}

	var status ledger.Status
	if err := json.Unmarshal(doc.Payload, &status); err != nil {
		return nil, fmt.Errorf("failed to decode status: %w", err)
	}
	return &status, nil
}

func (c *Client) Ping(ctx context.Context) (bool, error) {
	return c.client.Ping().Do(ctx)
}

func (c *Client) Close() error {
	return nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func filtersFor(req ledger.Request) []types.Query {
	filters := []types.Query{
		{Term: map[string]types.TermQuery{"kind": {Value: string(req.Kind)}}},
	}
	if req.IsLookup() {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{"id": {Value: req.ID}},
		})
	}
	return filters
}

// mapError reports rejected searches as query failures. Server-side
// unavailability and network errors stay transport errors.
func mapError(req ledger.Request, err error) error {
	var esErr *types.ElasticsearchError
	if !errors.As(err, &esErr) {
		return err
	}

	switch {
	case esErr.Status == http.StatusUnauthorized || esErr.Status == http.StatusForbidden:
		return ledger.NewQueryError(ledger.CodePermission, req, err)
	case esErr.Status >= http.StatusInternalServerError:
		return err
	default:
		return ledger.NewQueryError(ledger.CodeEvaluate, req, err)
	}
}
