package persistence

import (
	"strings"

	"gorm.io/gorm/clause"
)

// sortable is the whitelist of columns a listing may be ordered by. Requests
// for any other column fall back to created_at.
type sortable struct {
	table   string
	columns map[string]struct{}
}

func newSortable(table string, columns ...string) sortable {
	s := sortable{table: table, columns: map[string]struct{}{"created_at": {}, "updated_at": {}}}
	for _, c := range columns {
		s.columns[c] = struct{}{}
	}
	return s
}

// order builds a table-qualified ORDER BY term. Only "asc" (in any case)
// sorts ascending; newest first is the default.
func (s sortable) order(field, dir string) clause.OrderByColumn {
	field = strings.TrimSpace(field)
	if _, ok := s.columns[field]; !ok {
		field = "created_at"
	}
	return clause.OrderByColumn{
		Column: clause.Column{Table: s.table, Name: field},
		Desc:   !strings.EqualFold(strings.TrimSpace(dir), "asc"),
	}
}

var (
	roomSort      = newSortable("rooms", "room_number", "capacity", "rent")
	tenantSort    = newSortable("tenants", "join_date")
	billSort      = newSortable("bills", "month", "amount", "status", "paid_at")
	complaintSort = newSortable("complaints", "status", "resolved_at")
)
