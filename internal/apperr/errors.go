package apperr

import (
	"fmt"
	"net/http"
)

// Kind is the client-facing failure category
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindNotFound
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// WebError is the single failure a request ends with.
// Reason is shown to clients for bad requests only; Cause is for server logs.
type WebError struct {
	Kind   Kind
	Reason string
	Cause  error
}

func (e *WebError) Error() string {
	switch e.Kind {
	case KindBadRequest:
		return "bad request: " + e.Reason
	case KindNotFound:
		if e.Cause != nil {
			return "not found: " + e.Cause.Error()
		}
		return "not found"
	default:
		if e.Cause != nil {
			return "internal: " + e.Cause.Error()
		}
		return "internal"
	}
}

func (e *WebError) Unwrap() error {
	return e.Cause
}

func (e *WebError) StatusCode() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewBadRequest(reason string) *WebError {
	return &WebError{Kind: KindBadRequest, Reason: reason}
}

func NewBadRequestWrap(reason string, err error) *WebError {
	return &WebError{Kind: KindBadRequest, Reason: reason, Cause: err}
}

func NewNotFound() *WebError {
	return &WebError{Kind: KindNotFound}
}

func NewInternal(cause error) *WebError {
	return &WebError{Kind: KindInternal, Cause: cause}
}

func NewInternalf(format string, args ...any) *WebError {
	return NewInternal(fmt.Errorf(format, args...))
}
