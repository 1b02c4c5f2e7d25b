package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendorledger/backend/internal/ledger"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name       string
		page       int
		pageSize   int
		want       []int
		totalPages int
		startIndex int
		endIndex   int
	}{
		{"first page", 1, 3, []int{1, 2, 3}, 3, 0, 3},
		{"middle page", 2, 3, []int{4, 5, 6}, 3, 3, 6},
		{"short last page", 3, 3, []int{7}, 3, 6, 7},
		{"single page fits all", 1, 10, []int{1, 2, 3, 4, 5, 6, 7}, 1, 0, 7},
		{"page past the end", 4, 3, []int{}, 3, 0, 0},
		{"page zero", 0, 3, []int{}, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := ledger.Paginate(items, tt.page, tt.pageSize)
			assert.Equal(t, tt.want, page.Items)
			assert.Equal(t, tt.totalPages, page.TotalPages)
			assert.Equal(t, tt.startIndex, page.StartIndex)
			assert.Equal(t, tt.endIndex, page.EndIndex)
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	t.Parallel()

	page := ledger.Paginate([]string{}, 1, 10)
	assert.Equal(t, []string{}, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestPaginateInvalidPageSize(t *testing.T) {
	t.Parallel()

	page := ledger.Paginate([]int{1, 2, 3}, 1, 0)
	assert.Equal(t, []int{}, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}
