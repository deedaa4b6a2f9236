package query

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
)

// FailureKind is the closed set of ways a ledger call can fail
type FailureKind int

const (
	// FailureFind is a structured "entity not found" from the query engine
	FailureFind FailureKind = iota + 1
	// FailureQuery is any other structured query engine failure
	FailureQuery
	// FailureTransport covers timeouts, connection errors and malformed responses
	FailureTransport
)

func (k FailureKind) String() string {
	switch k {
	case FailureFind:
		return "find"
	case FailureQuery:
		return "query"
	case FailureTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Failure is the adapter-level error returned instead of a raw client error
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("ledger %s failure: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// failureFrom sorts a client error into the failure union
func failureFrom(err error) *Failure {
	var qe *ledger.QueryError
	if errors.As(err, &qe) {
		if qe.Code == ledger.CodeFind {
			return &Failure{Kind: FailureFind, Err: err}
		}
		return &Failure{Kind: FailureQuery, Err: err}
	}
	return &Failure{Kind: FailureTransport, Err: err}
}
