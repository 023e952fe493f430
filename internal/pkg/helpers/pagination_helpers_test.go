package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"oversized page size falls back to default", 1, 500, 0, DefaultPageSize},
		{"zero size falls back to default", 2, 0, 10, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		info := NewPaginationInfo(25, 1, 10)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, int64(25), info.TotalItems)
	})

	t.Run("empty result still reports one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("clamps the current page to the last page", func(t *testing.T) {
		info := NewPaginationInfo(5, 9, 10)
		assert.Equal(t, 1, info.CurrentPage)
	})
}
