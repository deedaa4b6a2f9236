// Package inmem serves a ledger snapshot from memory.
package inmem

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/fixture"
)

type entry struct {
	id      string
	payload json.RawMessage
}

// Client keeps every collection ordered by key, mirroring ledger iteration order
type Client struct {
	mu       sync.RWMutex
	entities map[ledger.Kind][]entry
	status   ledger.Status
}

func NewClient() *Client {
	return &Client{entities: make(map[ledger.Kind][]entry)}
}

// NewClientFromFixture builds a client preloaded with the fixture's records and status
func NewClientFromFixture(f *fixture.Fixture) (*Client, error) {
	records, err := f.Records()
	if err != nil {
		return nil, err
	}

	c := NewClient()
	c.Put(records...)
	if f.Status != nil {
		c.SetStatus(*f.Status)
	}
	return c, nil
}

// Put inserts or replaces records
func (c *Client) Put(records ...fixture.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	touched := make(map[ledger.Kind]struct{})
	for _, r := range records {
		entries := c.entities[r.Kind]
		replaced := false
		for i := range entries {
			if entries[i].id == r.ID {
				entries[i].payload = r.Payload
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, entry{id: r.ID, payload: r.Payload})
		}
		c.entities[r.Kind] = entries
		touched[r.Kind] = struct{}{}
	}

	for kind := range touched {
		entries := c.entities[kind]
		sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })
	}
}

func (c *Client) SetStatus(status ledger.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

func (c *Client) Query(ctx context.Context, req ledger.Request, window *ledger.Window) (*ledger.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !req.Kind.Valid() {
		return nil, ledger.NewQueryError(ledger.CodeEvaluate, req, fmt.Errorf("unknown entity kind %q", req.Kind))
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := c.entities[req.Kind]

	if req.IsLookup() {
		i := sort.Search(len(entries), func(i int) bool { return entries[i].id >= req.ID })
		if i == len(entries) || entries[i].id != req.ID {
			return nil, ledger.NewFindError(req)
		}
		return &ledger.Response{Items: []json.RawMessage{entries[i].payload}, Total: 1}, nil
	}

	total := int64(len(entries))
	selected := entries
	if window != nil {
		selected = applyWindow(entries, *window)
	}

	items := make([]json.RawMessage, len(selected))
	for i, e := range selected {
		items[i] = e.payload
	}
	return &ledger.Response{Items: items, Total: total}, nil
}

func (c *Client) Status(ctx context.Context) (*ledger.Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	status := c.status
	return &status, nil
}

func (c *Client) Close() error {
	return nil
}

func applyWindow(entries []entry, w ledger.Window) []entry {
	if w.Start < 0 || w.Start >= len(entries) || w.Limit <= 0 {
		return nil
	}
	end := len(entries)
	if w.Limit < end-w.Start {
		end = w.Start + w.Limit
	}
	return entries[w.Start:end]
}
