package expr

import "github.com/asmartbear/sqlight/sqltype"

// ColumnRef references a column of a table alias inside a query. Its type
// and nullability are inherited from the schema column it was built from.
type ColumnRef struct {
	Alias    string
	Column   string
	typ      sqltype.Type
	nullable bool
}

// NewColumnRef builds a ColumnRef for alias.column with the given declared
// type and nullability, as recorded in the owning schema.
func NewColumnRef(alias, column string, typ sqltype.Type, nullable bool) *ColumnRef {
	return &ColumnRef{Alias: alias, Column: column, typ: typ, nullable: nullable}
}

// SQLType implements Expression.
func (c *ColumnRef) SQLType() sqltype.Type { return c.typ }

// Nullability implements Expression.
func (c *ColumnRef) Nullability() sqltype.Nullability {
	if c.nullable {
		return sqltype.Sometimes
	}
	return sqltype.Never
}

// ToSQL implements Expression. Column references are atomic and ignore
// grouped.
func (c *ColumnRef) ToSQL(bool) string {
	return c.Alias + "." + c.Column
}
