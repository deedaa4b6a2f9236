package ledger

import (
	"context"
	"encoding/json"
	"time"
)

// Kind names an entity collection on the ledger
type Kind string

const (
	KindAccount         Kind = "account"
	KindDomain          Kind = "domain"
	KindAsset           Kind = "asset"
	KindAssetDefinition Kind = "asset_definition"
	KindRole            Kind = "role"
	KindPeer            Kind = "peer"
)

// Kinds lists every queryable collection
var Kinds = []Kind{KindAccount, KindDomain, KindAsset, KindAssetDefinition, KindRole, KindPeer}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Request selects entities of one kind. An empty ID scans the whole collection,
// otherwise the request is a lookup of a single entity.
type Request struct {
	Kind Kind
	ID   string
}

func (r Request) IsLookup() bool {
	return r.ID != ""
}

// Window is the ledger-native paging window: skip Start entities, return at most Limit
type Window struct {
	Start int
	Limit int
}

// Response carries raw entity payloads in ledger order plus the total number
// of entities matching the request, regardless of the window.
type Response struct {
	Items []json.RawMessage
	Total int64
}

// Status is the peer telemetry snapshot
type Status struct {
	Peers       uint64 `json:"peers" yaml:"peers"`
	Blocks      uint64 `json:"blocks" yaml:"blocks"`
	TxsAccepted uint64 `json:"txs_accepted" yaml:"txs_accepted"`
	TxsRejected uint64 `json:"txs_rejected" yaml:"txs_rejected"`
	UptimeMs    uint64 `json:"uptime_ms" yaml:"uptime_ms"`
	ViewChanges uint64 `json:"view_changes" yaml:"view_changes"`
}

func (s Status) Uptime() time.Duration {
	return time.Duration(s.UptimeMs) * time.Millisecond
}

// Client is the shared handle to the remote ledger.
// Implementations must be safe for concurrent use and own their own timeouts.
//
// Structured failures reported by the ledger's query engine are returned as
// *QueryError; any other error is a transport failure.
type Client interface {
	Query(ctx context.Context, req Request, window *Window) (*Response, error)
	Status(ctx context.Context) (*Status, error)
	Close() error
}
