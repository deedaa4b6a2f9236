package pagination

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(i int) (string, error) {
	return strconv.Itoa(i), nil
}

func mustCursor(t *testing.T, page, size int) Cursor {
	t.Helper()
	c, err := NewCursor(page, size)
	require.NoError(t, err)
	return c
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{15, 10, 2},
		{100, 1, 100},
		{99, 100, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}

	for total := int64(0); total < 500; total++ {
		for size := 1; size <= 25; size++ {
			got := TotalPages(total, size)
			assert.Equal(t, got == 0, total == 0)
			assert.GreaterOrEqual(t, got*int64(size), total)
			if got > 0 {
				assert.Less(t, (got-1)*int64(size), total)
			}
		}
	}
}

func TestNewOffsetResult_PartialLastPage(t *testing.T) {
	res, err := NewOffsetResult(mustCursor(t, 2, 10), []int{11, 12, 13, 14, 15}, 15, itoa)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 10, res.PageSize)
	assert.Equal(t, int64(15), res.TotalItems)
	assert.Equal(t, int64(2), res.TotalPages)
	assert.Equal(t, []string{"11", "12", "13", "14", "15"}, res.Items)
}

func TestNewOffsetResult_PageBeyondTotal(t *testing.T) {
	res, err := NewOffsetResult(mustCursor(t, 5, 10), []int{}, 15, itoa)

	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, int64(2), res.TotalPages)
	assert.Equal(t, int64(15), res.TotalItems)
}

func TestNewOffsetResult_PageBeyondTotalDropsStrayItems(t *testing.T) {
	res, err := NewOffsetResult(mustCursor(t, 3, 10), []int{1}, 15, itoa)

	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestNewOffsetResult_EmptyCollection(t *testing.T) {
	res, err := NewOffsetResult(mustCursor(t, 1, 10), []int(nil), 0, itoa)

	require.NoError(t, err)
	assert.Equal(t, int64(0), res.TotalPages)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestNewOffsetResult_ProjectionFailureAborts(t *testing.T) {
	boom := errors.New("malformed value")
	calls := 0
	project := func(i int) (string, error) {
		calls++
		if i == 2 {
			return "", boom
		}
		return strconv.Itoa(i), nil
	}

	res, err := NewOffsetResult(mustCursor(t, 1, 10), []int{1, 2, 3}, 3, project)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestNewOffsetResult_WindowViolation(t *testing.T) {
	res, err := NewOffsetResult(mustCursor(t, 1, 2), []int{1, 2, 3}, 3, itoa)

	assert.Nil(t, res)
	assert.ErrorContains(t, err, "window violated")
}

func TestNewOffsetResult_ZeroCursor(t *testing.T) {
	_, err := NewOffsetResult(Cursor{}, []int{}, 0, itoa)
	assert.Error(t, err)
}
