package expr

import "github.com/asmartbear/sqlight/sqltype"

// inSubquery renders as "lhs IN (SELECT ...)". The subquery operand is
// expected to already render its own wrapping parentheses (see Subquery).
// It always yields BOOLEAN and is never itself null.
type inSubquery struct {
	lhs      Expression
	subquery Expression
}

// InSubquery builds an IN-subquery predicate: lhs IN (subquery).
func InSubquery(lhs, subquery Expression) Expression {
	return &inSubquery{lhs: lhs, subquery: subquery}
}

// SQLType implements Expression.
func (s *inSubquery) SQLType() sqltype.Type { return sqltype.BOOLEAN }

// Nullability implements Expression.
func (s *inSubquery) Nullability() sqltype.Nullability { return sqltype.Never }

// ToSQL implements Expression.
func (s *inSubquery) ToSQL(bool) string {
	return s.lhs.ToSQL(true) + " IN " + s.subquery.ToSQL(false)
}
