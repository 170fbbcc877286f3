package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateSlicesMiddlePage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	result := Paginate(items, &PaginationParams{Page: 2, PerPage: 3})

	assert.Equal(t, []int{4, 5, 6}, result.Items)
	require.NotNil(t, result.Pagination)
	assert.Equal(t, int64(7), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)
}

func TestPaginatePastTheEnd(t *testing.T) {
	items := []string{"a", "b"}

	result := Paginate(items, &PaginationParams{Page: 5, PerPage: 10})

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(2), result.Pagination.Total)
	assert.False(t, result.Pagination.HasNext)
}

func TestPaginateNormalizesParams(t *testing.T) {
	items := make([]int, 30)

	result := Paginate(items, &PaginationParams{Page: 0, PerPage: -1})

	assert.Len(t, result.Items, 15)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 15, result.Pagination.PerPage)
}
