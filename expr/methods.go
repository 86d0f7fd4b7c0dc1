package expr

import "github.com/asmartbear/sqlight/sqltype"

// compare builds a BOOLEAN comparison v SEP rhs. A typed NULL on either
// side is acceptable; otherwise the operand types should match.
func (v Val) compare(op, sep string, rhs any) (Val, error) {
	rhsExpr, err := Expr(rhs)
	if err != nil {
		return Val{}, err
	}
	if !typesCompatibleForComparison(v.Expression, rhsExpr) {
		return Val{}, NewTypeMismatchError(op, v.SQLType().String(), rhsExpr.SQLType().String())
	}
	return Wrap(NewNaryOp(sep, []Expression{v.Expression, rhsExpr}, sqltype.BOOLEAN,
		sqltype.AnySometimes(v.Nullability(), rhsExpr.Nullability()))), nil
}

// typesCompatibleForComparison allows a typed NULL literal on either side
// regardless of its declared type, and otherwise requires the usual
// TEXT/VARCHAR-interchangeable type compatibility.
func typesCompatibleForComparison(lhs, rhs Expression) bool {
	if isNullLiteral(lhs) || isNullLiteral(rhs) {
		return true
	}
	return lhs.SQLType().Compatible(rhs.SQLType())
}

func isNullLiteral(e Expression) bool {
	if v, ok := e.(Val); ok {
		return isNullLiteral(v.Expression)
	}
	lit, ok := e.(*literalExpr)
	return ok && lit.IsNull()
}

// Eq builds v=rhs.
func (v Val) Eq(rhs any) (Val, error) { return v.compare("eq", "=", rhs) }

// Ne builds v!=rhs.
func (v Val) Ne(rhs any) (Val, error) { return v.compare("ne", "!=", rhs) }

// Lt builds v<rhs.
func (v Val) Lt(rhs any) (Val, error) { return v.compare("lt", "<", rhs) }

// Le builds v<=rhs.
func (v Val) Le(rhs any) (Val, error) { return v.compare("le", "<=", rhs) }

// Gt builds v>rhs.
func (v Val) Gt(rhs any) (Val, error) { return v.compare("gt", ">", rhs) }

// Ge builds v>=rhs.
func (v Val) Ge(rhs any) (Val, error) { return v.compare("ge", ">=", rhs) }

// arith builds a binary arithmetic operator with the given promotion rule.
func (v Val) arith(op, sep string, rhs any, resultType func(l, r sqltype.Type) sqltype.Type) (Val, error) {
	rhsExpr, err := Expr(rhs)
	if err != nil {
		return Val{}, err
	}
	if _, err := assertIsNumeric(op, v.Expression); err != nil {
		return Val{}, err
	}
	if _, err := assertIsNumeric(op, rhsExpr); err != nil {
		return Val{}, err
	}
	typ := resultType(v.SQLType(), rhsExpr.SQLType())
	return Wrap(NewNaryOp(sep, []Expression{v.Expression, rhsExpr}, typ,
		sqltype.AnySometimes(v.Nullability(), rhsExpr.Nullability()))), nil
}

// promote implements the add/sub/mul promotion rule: REAL dominates
// INTEGER.
func promote(l, r sqltype.Type) sqltype.Type {
	if l == sqltype.REAL || r == sqltype.REAL {
		return sqltype.REAL
	}
	return sqltype.INTEGER
}

// Add builds v+rhs with REAL/INTEGER promotion.
func (v Val) Add(rhs any) (Val, error) { return v.arith("add", "+", rhs, promote) }

// Sub builds v-rhs with REAL/INTEGER promotion.
func (v Val) Sub(rhs any) (Val, error) { return v.arith("sub", "-", rhs, promote) }

// Mul builds v*rhs with REAL/INTEGER promotion.
func (v Val) Mul(rhs any) (Val, error) { return v.arith("mul", "*", rhs, promote) }

// Div builds v/rhs. The result is always REAL regardless of operand types.
func (v Val) Div(rhs any) (Val, error) {
	return v.arith("div", "/", rhs, func(sqltype.Type, sqltype.Type) sqltype.Type { return sqltype.REAL })
}

// And conjoins v with rhs; both must be BOOLEAN.
func (v Val) And(rhs any) (Val, error) { return And(v.Expression, rhs) }

// Or disjoins v with rhs; both must be BOOLEAN.
func (v Val) Or(rhs any) (Val, error) { return Or(v.Expression, rhs) }

// Not negates v; v must be BOOLEAN.
func (v Val) Not() (Val, error) { return Not(v.Expression) }

// IsNull wraps v in an IS NULL check.
func (v Val) IsNull() Val { return Wrap(IsNull(v.Expression)) }

// IsNotNull wraps v in an IS NOT NULL check.
func (v Val) IsNotNull() Val { return Wrap(IsNotNull(v.Expression)) }

// Includes builds the INSTR(v,sub) substring-membership predicate. v must
// be TEXT/VARCHAR.
func (v Val) Includes(sub any) (Val, error) {
	if _, err := assertIsText("includes", v.Expression); err != nil {
		return Val{}, err
	}
	subExpr, err := Expr(sub)
	if err != nil {
		return Val{}, err
	}
	return Wrap(NewNaryFunc("INSTR", []Expression{v.Expression, subExpr}, sqltype.BOOLEAN,
		sqltype.AnySometimes(v.Nullability(), subExpr.Nullability()))), nil
}

// InList builds v IN(list...). The list members must share a common type.
func (v Val) InList(list ...any) (Val, error) {
	operands, err := coerceAll(list)
	if err != nil {
		return Val{}, err
	}
	for _, o := range operands {
		if !v.SQLType().Compatible(o.SQLType()) && !isNullLiteral(o) {
			return Val{}, NewTypeMismatchError("inList", v.SQLType().String(), o.SQLType().String())
		}
	}
	return Wrap(InList(v.Expression, operands...)), nil
}

// InSubquery builds v IN (subquery).
func (v Val) InSubquery(subquery Val) Val {
	return Wrap(InSubquery(v.Expression, subquery.Expression))
}

// AssertIsBoolean returns v unchanged if it is BOOLEAN, else a
// TypeMismatchError.
func (v Val) AssertIsBoolean() (Val, error) {
	if _, err := assertIsBoolean("assertIsBoolean", v.Expression); err != nil {
		return Val{}, err
	}
	return v, nil
}

// AssertIsText returns v unchanged if it is TEXT/VARCHAR, else a
// TypeMismatchError.
func (v Val) AssertIsText() (Val, error) {
	if _, err := assertIsText("assertIsText", v.Expression); err != nil {
		return Val{}, err
	}
	return v, nil
}

// AssertIsNumeric returns v unchanged if it is INTEGER/REAL, else a
// TypeMismatchError.
func (v Val) AssertIsNumeric() (Val, error) {
	if _, err := assertIsNumeric("assertIsNumeric", v.Expression); err != nil {
		return Val{}, err
	}
	return v, nil
}
