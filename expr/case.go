package expr

import (
	"strings"

	"github.com/asmartbear/sqlight/sqltype"
)

// WhenThen is one WHEN/THEN arm of a CASE expression.
type WhenThen struct {
	When Expression
	Then Expression
}

// caseExpr is a CASE expression: an ordered list of WHEN/THEN arms plus an
// optional ELSE. Its type is the common type of all THEN branches and the
// ELSE branch, if any.
type caseExpr struct {
	arms []WhenThen
	els  Expression
	typ  sqltype.Type
}

// Case builds a CASE expression. Every When must be BOOLEAN; every Then and
// the optional els must share a common type (TEXT/VARCHAR are
// interchangeable). Without an ELSE, nullability is Sometimes. With an
// ELSE, nullability is Sometimes iff any THEN or the ELSE is Sometimes.
func Case(arms []WhenThen, els Expression) (Expression, error) {
	if len(arms) == 0 {
		return nil, NewTypeMismatchError("CASE", "at least one WHEN/THEN arm", "none")
	}
	for _, arm := range arms {
		if _, err := assertIsBoolean("CASE WHEN", arm.When); err != nil {
			return nil, err
		}
	}
	typ := arms[0].Then.SQLType()
	for _, arm := range arms[1:] {
		if !typ.Compatible(arm.Then.SQLType()) {
			return nil, NewTypeMismatchError("CASE THEN", typ.String(), arm.Then.SQLType().String())
		}
	}
	if els != nil && !typ.Compatible(els.SQLType()) {
		return nil, NewTypeMismatchError("CASE ELSE", typ.String(), els.SQLType().String())
	}
	return &caseExpr{arms: arms, els: els, typ: typ}, nil
}

// SQLType implements Expression.
func (c *caseExpr) SQLType() sqltype.Type { return c.typ }

// Nullability implements Expression.
func (c *caseExpr) Nullability() sqltype.Nullability {
	if c.els == nil {
		return sqltype.Sometimes
	}
	ns := make([]sqltype.Nullability, 0, len(c.arms)+1)
	for _, arm := range c.arms {
		ns = append(ns, arm.Then.Nullability())
	}
	ns = append(ns, c.els.Nullability())
	return sqltype.AnySometimes(ns...)
}

// ToSQL implements Expression. CASE ... END is always atomic.
func (c *caseExpr) ToSQL(bool) string {
	var b strings.Builder
	b.WriteString("CASE")
	for _, arm := range c.arms {
		b.WriteString(" WHEN ")
		b.WriteString(arm.When.ToSQL(false))
		b.WriteString(" THEN ")
		b.WriteString(arm.Then.ToSQL(false))
	}
	if c.els != nil {
		b.WriteString(" ELSE ")
		b.WriteString(c.els.ToSQL(false))
	}
	b.WriteString(" END")
	return b.String()
}
