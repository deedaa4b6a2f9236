package ledger

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a structured query engine failure
type ErrorCode string

const (
	// CodeFind means the requested entity does not exist
	CodeFind       ErrorCode = "find"
	CodeEvaluate   ErrorCode = "evaluate"
	CodePermission ErrorCode = "permission"
	CodeConversion ErrorCode = "conversion"
)

// QueryError is a failure reported by the ledger's query engine, as opposed
// to a failure to talk to the ledger at all.
type QueryError struct {
	Code    ErrorCode
	Request Request
	Err     error
}

func (e *QueryError) Error() string {
	target := string(e.Request.Kind)
	if e.Request.IsLookup() {
		target += " " + e.Request.ID
	}
	if e.Err != nil {
		return fmt.Sprintf("%s query error on %s: %v", e.Code, target, e.Err)
	}
	return fmt.Sprintf("%s query error on %s", e.Code, target)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func NewFindError(req Request) *QueryError {
	return &QueryError{Code: CodeFind, Request: req, Err: errors.New("entity not found")}
}

func NewQueryError(code ErrorCode, req Request, err error) *QueryError {
	return &QueryError{Code: code, Request: req, Err: err}
}
