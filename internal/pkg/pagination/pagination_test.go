package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{name: "defaults", page: 0, perPage: 0, wantPage: 1, wantPerPage: 20, wantOffset: 0},
		{name: "negative values", page: -3, perPage: -1, wantPage: 1, wantPerPage: 20, wantOffset: 0},
		{name: "caps per page", page: 2, perPage: 500, wantPage: 2, wantPerPage: 100, wantOffset: 100},
		{name: "third page", page: 3, perPage: 10, wantPage: 3, wantPerPage: 10, wantOffset: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
			assert.Equal(t, tt.wantPerPage, p.Limit())
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

func TestNewInfo(t *testing.T) {
	t.Run("empty listing has one page", func(t *testing.T) {
		info := NewInfo(1, 20, 0)
		assert.Equal(t, 1, info.TotalPages)
		assert.False(t, info.HasNext)
		assert.False(t, info.HasPrev)
	})

	t.Run("partial last page", func(t *testing.T) {
		info := NewParams(2, 2).Info(5)
		assert.Equal(t, 3, info.TotalPages)
		assert.True(t, info.HasNext)
		assert.True(t, info.HasPrev)
	})

	t.Run("exact multiple", func(t *testing.T) {
		info := NewInfo(2, 10, 20)
		assert.Equal(t, 2, info.TotalPages)
		assert.False(t, info.HasNext)
	})

	t.Run("zero per page falls back to default", func(t *testing.T) {
		info := NewInfo(1, 0, 45)
		assert.Equal(t, 20, info.PerPage)
		assert.Equal(t, 3, info.TotalPages)
	})
}
