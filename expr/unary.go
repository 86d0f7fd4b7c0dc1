package expr

import "github.com/asmartbear/sqlight/sqltype"

// unaryOp is a prefix+suffix-wrapped single-child operator, e.g. NOT(x)
// rendering as "NOT (x)".
type unaryOp struct {
	prefix, suffix string
	operand        Expression
	typ            sqltype.Type
	nullability    sqltype.Nullability
}

// NewUnaryOp builds a unary operator with the given rendering prefix/suffix
// around its operand. The node reports exactly the nullability passed in;
// callers such as Not pass the operand's own nullability.
func NewUnaryOp(prefix, suffix string, operand Expression, typ sqltype.Type, nullability sqltype.Nullability) Expression {
	return &unaryOp{prefix: prefix, suffix: suffix, operand: operand, typ: typ, nullability: nullability}
}

// SQLType implements Expression.
func (u *unaryOp) SQLType() sqltype.Type { return u.typ }

// Nullability implements Expression.
func (u *unaryOp) Nullability() sqltype.Nullability { return u.nullability }

// ToSQL implements Expression. The operator's own prefix/suffix typically
// already parenthesizes its operand; grouped only adds an outer wrap when
// the rendered result is not already one fully-parenthesized unit.
func (u *unaryOp) ToSQL(grouped bool) string {
	s := u.prefix + u.operand.ToSQL(false) + u.suffix
	if grouped && !isFullyParenthesized(s) {
		return "(" + s + ")"
	}
	return s
}
