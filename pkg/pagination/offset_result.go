package pagination

import "fmt"

// OffsetResult is the page envelope returned by collection endpoints
type OffsetResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
}

// NewOffsetResult builds the envelope for one page of raw items.
// Each item is passed through project in order; the first projection error
// aborts the whole page. A page past the last one yields an empty, valid
// envelope since totals may shrink between requests.
func NewOffsetResult[R any, T any](cursor Cursor, items []R, total int64, project func(R) (T, error)) (*OffsetResult[T], error) {
	if cursor.pageSize < 1 {
		return nil, fmt.Errorf("invalid cursor: page size %d", cursor.pageSize)
	}
	if total < 0 {
		return nil, fmt.Errorf("invalid total count: %d", total)
	}
	if len(items) > cursor.pageSize {
		return nil, fmt.Errorf("window violated: got %d items for page size %d", len(items), cursor.pageSize)
	}

	totalPages := TotalPages(total, cursor.pageSize)

	result := &OffsetResult[T]{
		Items:      make([]T, 0, len(items)),
		Page:       cursor.page,
		PageSize:   cursor.pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}

	if int64(cursor.page) > totalPages {
		return result, nil
	}

	for i, item := range items {
		dto, err := project(item)
		if err != nil {
			return nil, fmt.Errorf("failed to project item %d: %w", cursor.Start()+i, err)
		}
		result.Items = append(result.Items, dto)
	}

	return result, nil
}

// TotalPages returns ceil(total / size), 0 when total is 0
func TotalPages(total int64, size int) int64 {
	if total <= 0 || size <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return pages
}
