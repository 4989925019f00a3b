// Package sorting maps caller-facing sort parameters onto a closed set of
// columns. Anything outside a table's allow-list falls back to its default.
package sorting

import (
	"strings"

	"gorm.io/gorm/clause"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Table is the allow-list for one list view.
type Table struct {
	columns          map[string]clause.Column
	defaultColumn    string
	defaultDirection Direction
	tiebreak         clause.Column
}

var (
	Customers = Table{
		columns: map[string]clause.Column{
			"name":          {Table: "customers", Name: "name"},
			"email":         {Table: "customers", Name: "email"},
			"totalInvoices": {Name: "total_invoices"},
			"totalPending":  {Name: "total_pending"},
			"totalPaid":     {Name: "total_paid"},
		},
		defaultColumn:    "name",
		defaultDirection: Asc,
		tiebreak:         clause.Column{Table: "customers", Name: "id"},
	}

	Invoices = Table{
		columns: map[string]clause.Column{
			"customer": {Table: "customers", Name: "name"},
			"name":     {Table: "customers", Name: "name"},
			"email":    {Table: "customers", Name: "email"},
			"amount":   {Table: "invoices", Name: "amount"},
			"date":     {Table: "invoices", Name: "date"},
			"status":   {Table: "invoices", Name: "status"},
		},
		defaultColumn:    "date",
		defaultDirection: Desc,
		tiebreak:         clause.Column{Table: "invoices", Name: "id"},
	}
)

// Sort is a resolved, allow-listed ordering.
type Sort struct {
	Key       string
	Column    clause.Column
	Direction Direction
}

// Resolve never fails: unknown columns and directions become the defaults.
func (t Table) Resolve(column, direction string) Sort {
	key := column
	col, ok := t.columns[key]
	if !ok {
		key = t.defaultColumn
		col = t.columns[key]
	}
	return Sort{Key: key, Column: col, Direction: t.direction(direction)}
}

func (t Table) direction(raw string) Direction {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(Asc):
		return Asc
	case string(Desc):
		return Desc
	default:
		return t.defaultDirection
	}
}

// OrderBy returns the ORDER BY expression, ending with the id tiebreak so
// pages never overlap.
func (t Table) OrderBy(s Sort) clause.OrderBy {
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: s.Column, Desc: s.Direction == Desc},
		{Column: t.tiebreak},
	}}
}
