package apperr

import (
	"fmt"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/query"
)

// Mode is the caller's intent, which decides what a ledger failure means
type Mode int

const (
	// ExpectFind is used by single-entity lookups: a missing entity is a 404
	ExpectFind Mode = iota + 1
	// ExpectAny is used by collection scans, where "not found" is never a legitimate outcome
	ExpectAny
)

// Classify maps an adapter failure to the response taxonomy.
// It never produces a bad request and trusts mode as given.
func Classify(f *query.Failure, mode Mode) *WebError {
	if f == nil {
		return NewInternalf("classify called without a failure")
	}

	if mode == ExpectFind {
		switch f.Kind {
		case query.FailureFind:
			return &WebError{Kind: KindNotFound, Cause: f}
		case query.FailureQuery:
			return NewInternal(fmt.Errorf("find error expected, got: %w", f))
		default:
			return NewInternal(fmt.Errorf("unexpected query error: %w", f))
		}
	}

	if f.Kind == query.FailureTransport {
		return NewInternal(fmt.Errorf("unexpected query error: %w", f))
	}
	return NewInternal(fmt.Errorf("ledger query error: %w", f))
}
