package es

import (
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

const (
	statusKind  = "status"
	statusDocID = "_ledger_status"

	// index.max_result_window default
	maxResultWindow = 10000
)

// document is the stored form of one ledger entity. The payload is kept
// verbatim and is not indexed.
type document struct {
	Kind    string          `json:"kind"`
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

func documentID(kind, id string) string {
	return kind + ":" + id
}

func buildMapping() types.TypeMapping {
	payload := types.NewObjectProperty()
	disabled := false
	payload.Enabled = &disabled

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"kind":    types.NewKeywordProperty(),
			"id":      types.NewKeywordProperty(),
			"payload": payload,
		},
	}
}
