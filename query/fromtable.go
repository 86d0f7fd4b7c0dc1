package query

import (
	"github.com/asmartbear/sqlight/expr"
	"github.com/asmartbear/sqlight/schema"
)

// ColumnHandle is a column-reference expression plus the bare column name
// it was built from, so PassThrough can re-derive its default alias.
type ColumnHandle struct {
	expr.Val
	ColumnName string
}

// FromTable is a table reference bound into a SELECT's FROM/JOIN list. It
// carries the caller-chosen alias and a column-name-to-reference map for
// every column declared on the underlying schema table.
type FromTable struct {
	Alias     string
	TableName string
	Col       map[string]ColumnHandle
}

func newFromTable(alias string, t *schema.Table) *FromTable {
	ft := &FromTable{
		Alias:     alias,
		TableName: t.Name,
		Col:       make(map[string]ColumnHandle, len(t.Columns)),
	}
	for _, c := range t.Columns {
		ref := expr.NewColumnRef(alias, c.Name, c.Type, c.Nullable)
		ft.Col[c.Name] = ColumnHandle{Val: expr.Wrap(ref), ColumnName: c.Name}
	}
	return ft
}
