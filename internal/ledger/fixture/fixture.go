// Package fixture loads ledger snapshots from YAML.
package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"gopkg.in/yaml.v3"
)

// Fixture is a ledger snapshot: a status block plus entities grouped by kind
type Fixture struct {
	Status   *ledger.Status        `yaml:"status"`
	Entities map[ledger.Kind][]any `yaml:"entities"`
}

// Record is one entity ready to be stored
type Record struct {
	Kind    ledger.Kind
	ID      string
	Payload json.RawMessage
}

type Loader struct {
	reader io.Reader
}

func NewLoader(reader io.Reader) *Loader {
	return &Loader{reader: reader}
}

func (l *Loader) Load() (*Fixture, error) {
	decoder := yaml.NewDecoder(l.reader)
	decoder.KnownFields(true)

	var f Fixture
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer file.Close()

	return NewLoader(file).Load()
}

// Records converts every entity to JSON and derives its key.
// Output is ordered by kind, then key. Duplicate keys are rejected.
func (f *Fixture) Records() ([]Record, error) {
	var records []Record
	seen := make(map[ledger.Kind]map[string]struct{})

	for kind, items := range f.Entities {
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown entity kind %q", kind)
		}
		seen[kind] = make(map[string]struct{}, len(items))

		for i, item := range items {
			payload, err := json.Marshal(item)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: failed to encode: %w", kind, i, err)
			}
			id, err := ledger.Key(kind, payload)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", kind, i, err)
			}
			if _, dup := seen[kind][id]; dup {
				return nil, fmt.Errorf("%s[%d]: duplicate id %q", kind, i, id)
			}
			seen[kind][id] = struct{}{}

			records = append(records, Record{Kind: kind, ID: id, Payload: payload})
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Kind != records[j].Kind {
			return records[i].Kind < records[j].Kind
		}
		return records[i].ID < records[j].ID
	})

	return records, nil
}
