package expr

import "github.com/asmartbear/sqlight/sqltype"

// nullCheck implements IS NULL / IS NOT NULL. It always yields BOOLEAN and
// is never itself null.
type nullCheck struct {
	operand Expression
	not     bool
}

// IsNull wraps e in an IS NULL check.
func IsNull(e Expression) Expression { return &nullCheck{operand: e, not: false} }

// IsNotNull wraps e in an IS NOT NULL check.
func IsNotNull(e Expression) Expression { return &nullCheck{operand: e, not: true} }

// SQLType implements Expression.
func (n *nullCheck) SQLType() sqltype.Type { return sqltype.BOOLEAN }

// Nullability implements Expression: IS [NOT] NULL always evaluates to a
// concrete boolean, never NULL.
func (n *nullCheck) Nullability() sqltype.Nullability { return sqltype.Never }

// ToSQL implements Expression. The phrase is self-bounded, so grouped is
// ignored; the operand is rendered grouped so composite operands stay
// unambiguous.
func (n *nullCheck) ToSQL(bool) string {
	kw := "IS NULL"
	if n.not {
		kw = "IS NOT NULL"
	}
	return n.operand.ToSQL(true) + " " + kw
}
