package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Normalize(t *testing.T) {
	f := Filter{Page: 0, PageSize: 500, OrderDir: "sideways"}.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, MaxPageSize, f.PageSize)
	assert.Equal(t, "desc", f.OrderDir)
}

func TestFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, Filter{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, Filter{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 0, Filter{}.Offset())
}

func TestNewPaginated(t *testing.T) {
	p := NewPaginated([]int{1, 2, 3}, 21, 1, 10)

	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(21), p.Total)
	assert.Len(t, p.Items, 3)

	empty := NewPaginated([]int{}, 0, 1, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Equal(t, DefaultPageSize, empty.PageSize)
}
