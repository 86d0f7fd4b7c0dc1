package expr

import "github.com/asmartbear/sqlight/sqltype"

// naryFunc renders as NAME(c1,c2,...). Already atomic by virtue of its own
// parentheses, so it ignores the outer grouped hint.
type naryFunc struct {
	name        string
	operands    []Expression
	typ         sqltype.Type
	nullability sqltype.Nullability
}

// NewNaryFunc builds a function-call-style n-ary node.
func NewNaryFunc(name string, operands []Expression, typ sqltype.Type, nullability sqltype.Nullability) Expression {
	return &naryFunc{name: name, operands: operands, typ: typ, nullability: nullability}
}

// SQLType implements Expression.
func (f *naryFunc) SQLType() sqltype.Type { return f.typ }

// Nullability implements Expression.
func (f *naryFunc) Nullability() sqltype.Nullability { return f.nullability }

// ToSQL implements Expression.
func (f *naryFunc) ToSQL(bool) string {
	return f.name + "(" + joinSQL(f.operands, false, ",") + ")"
}
