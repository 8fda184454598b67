package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/clause"
)

func TestSortable_Order(t *testing.T) {
	tests := []struct {
		name       string
		field, dir string
		wantColumn string
		wantDesc   bool
	}{
		{"defaults to newest first", "", "", "created_at", true},
		{"whitelisted column ascending", "rent", "asc", "rent", false},
		{"direction is case insensitive", " capacity ", " ASC ", "capacity", false},
		{"unknown direction sorts descending", "room_number", "sideways", "room_number", true},
		{"unknown column falls back", "password_hash", "asc", "created_at", false},
		{"injection falls back", "rent; DROP TABLE rooms;--", "desc", "created_at", true},
		{"shared timestamp column", "updated_at", "desc", "updated_at", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roomSort.order(tt.field, tt.dir)
			assert.Equal(t, clause.OrderByColumn{
				Column: clause.Column{Table: "rooms", Name: tt.wantColumn},
				Desc:   tt.wantDesc,
			}, got)
		})
	}
}

func TestSortable_ColumnsAreScopedPerTable(t *testing.T) {
	assert.Equal(t, "created_at", tenantSort.order("rent", "asc").Column.Name)
	assert.Equal(t, "paid_at", billSort.order("paid_at", "asc").Column.Name)
	assert.Equal(t, "resolved_at", complaintSort.order("resolved_at", "").Column.Name)
	assert.Equal(t, "bills", billSort.order("", "").Column.Table)
}
