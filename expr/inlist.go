package expr

import "github.com/asmartbear/sqlight/sqltype"

// inList renders as "lhs IN(a,b,c)". It always yields BOOLEAN and is never
// itself null.
type inList struct {
	lhs  Expression
	list []Expression
}

// InList builds an IN-list predicate: lhs IN(list...).
func InList(lhs Expression, list ...Expression) Expression {
	return &inList{lhs: lhs, list: list}
}

// SQLType implements Expression.
func (l *inList) SQLType() sqltype.Type { return sqltype.BOOLEAN }

// Nullability implements Expression.
func (l *inList) Nullability() sqltype.Nullability { return sqltype.Never }

// ToSQL implements Expression. Atomic by virtue of its own parentheses.
func (l *inList) ToSQL(bool) string {
	return l.lhs.ToSQL(true) + " IN(" + joinSQL(l.list, false, ",") + ")"
}
