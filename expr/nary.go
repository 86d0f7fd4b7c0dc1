package expr

import "github.com/asmartbear/sqlight/sqltype"

// naryOp is a multi-ary infix operator: c1 SEP c2 SEP c3 ... with minimal
// but sufficient parenthesization of composite children.
type naryOp struct {
	sep         string
	operands    []Expression
	typ         sqltype.Type
	nullability sqltype.Nullability
}

// NewNaryOp builds an n-ary infix operator. sep is written verbatim between
// operands (include any flanking spaces the operator needs, e.g. " AND ").
func NewNaryOp(sep string, operands []Expression, typ sqltype.Type, nullability sqltype.Nullability) Expression {
	return &naryOp{sep: sep, operands: operands, typ: typ, nullability: nullability}
}

// SQLType implements Expression.
func (n *naryOp) SQLType() sqltype.Type { return n.typ }

// Nullability implements Expression.
func (n *naryOp) Nullability() sqltype.Nullability { return n.nullability }

// ToSQL implements Expression.
//
// A single-operand group degenerates to the rendering of that operand
// alone: no separator, no added parentheses. Two or more operands always
// re-parenthesize composite children (grouped-inner = grouped || N>1), and
// the whole group is wrapped iff grouped && N>1.
func (n *naryOp) ToSQL(grouped bool) string {
	if len(n.operands) == 1 {
		return n.operands[0].ToSQL(grouped)
	}
	innerGrouped := grouped || len(n.operands) > 1
	joined := joinSQL(n.operands, innerGrouped, n.sep)
	if grouped && len(n.operands) > 1 {
		return "(" + joined + ")"
	}
	return joined
}
