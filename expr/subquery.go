package expr

import "github.com/asmartbear/sqlight/sqltype"

// Subquery adapts a pre-rendered SELECT string as a scalar expression. Its
// declared type is whatever the caller asserts (typically the type of the
// single projection the subquery selects); its nullability is always
// Sometimes, since the presence of a matching row is never statically
// known.
type Subquery struct {
	sql string
	typ sqltype.Type
}

// NewSubquery wraps the rendered body of a SELECT statement (without outer
// parentheses) as a scalar expression of the given type.
func NewSubquery(sql string, typ sqltype.Type) *Subquery {
	return &Subquery{sql: sql, typ: typ}
}

// SQLType implements Expression.
func (s *Subquery) SQLType() sqltype.Type { return s.typ }

// Nullability implements Expression.
func (s *Subquery) Nullability() sqltype.Nullability { return sqltype.Sometimes }

// ToSQL implements Expression. A subquery is always atomic: "(SELECT ...)".
func (s *Subquery) ToSQL(bool) string {
	return "(" + s.sql + ")"
}
