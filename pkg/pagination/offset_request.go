package pagination

import (
	"fmt"
	"math"
	"strconv"
)

// RequestError reports a malformed pagination parameter.
// Message is safe to return to the client.
type RequestError struct {
	Param   string
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Cursor is a validated page window. Build it with ParseOffsetRequest or NewCursor.
type Cursor struct {
	page     int
	pageSize int
}

// NewCursor validates page and pageSize the same way ParseOffsetRequest does.
func NewCursor(page, pageSize int) (Cursor, error) {
	if page < 1 {
		return Cursor{}, errInvalidPage()
	}
	if pageSize < 1 || pageSize > PageMaxSize {
		return Cursor{}, errInvalidPageSize()
	}
	if page-1 > math.MaxInt/pageSize {
		return Cursor{}, &RequestError{Param: QueryParamPage, Message: "page is out of range"}
	}
	return Cursor{page: page, pageSize: pageSize}, nil
}

// ParseOffsetRequest normalizes raw query parameters into a Cursor.
// Empty values fall back to page 1 and PageDefaultSize. Invalid values are
// rejected, never clamped.
func ParseOffsetRequest(rawPage, rawPageSize string) (Cursor, error) {
	page := 1
	if rawPage != "" {
		p, err := strconv.Atoi(rawPage)
		if err != nil || p < 1 {
			return Cursor{}, errInvalidPage()
		}
		page = p
	}

	pageSize := PageDefaultSize
	if rawPageSize != "" {
		s, err := strconv.Atoi(rawPageSize)
		if err != nil || s < 1 || s > PageMaxSize {
			return Cursor{}, errInvalidPageSize()
		}
		pageSize = s
	}

	return NewCursor(page, pageSize)
}

func (c Cursor) Page() int {
	return c.page
}

func (c Cursor) PageSize() int {
	return c.pageSize
}

// Start is the zero-based offset of the first item on the page
func (c Cursor) Start() int {
	return (c.page - 1) * c.pageSize
}

func errInvalidPage() *RequestError {
	return &RequestError{Param: QueryParamPage, Message: "page must be a positive integer"}
}

func errInvalidPageSize() *RequestError {
	return &RequestError{
		Param:   QueryParamPageSize,
		Message: fmt.Sprintf("%s must be an integer between 1 and %d", QueryParamPageSize, PageMaxSize),
	}
}
