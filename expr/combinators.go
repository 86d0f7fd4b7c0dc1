package expr

import "github.com/asmartbear/sqlight/sqltype"

// Concat builds the n-ary TEXT concatenation t1||t2||....
func Concat(items ...any) (Val, error) {
	operands, err := coerceAll(items)
	if err != nil {
		return Val{}, err
	}
	for _, o := range operands {
		if _, err := assertIsText("CONCAT", o); err != nil {
			return Val{}, err
		}
	}
	ns := make([]sqltype.Nullability, len(operands))
	for i, o := range operands {
		ns[i] = o.Nullability()
	}
	return Wrap(NewNaryOp("||", operands, sqltype.TEXT, sqltype.AnySometimes(ns...))), nil
}

// And builds the n-ary BOOLEAN conjunction b1 AND b2 AND .... A single
// operand degenerates to that operand's own rendering with no added
// keyword or parentheses.
func And(items ...any) (Val, error) { return boolCombinator("AND", " AND ", items) }

// Or builds the n-ary BOOLEAN disjunction b1 OR b2 OR ....
func Or(items ...any) (Val, error) { return boolCombinator("OR", " OR ", items) }

func boolCombinator(op, sep string, items []any) (Val, error) {
	operands, err := coerceAll(items)
	if err != nil {
		return Val{}, err
	}
	for _, o := range operands {
		if _, err := assertIsBoolean(op, o); err != nil {
			return Val{}, err
		}
	}
	ns := make([]sqltype.Nullability, len(operands))
	for i, o := range operands {
		ns[i] = o.Nullability()
	}
	return Wrap(NewNaryOp(sep, operands, sqltype.BOOLEAN, sqltype.AnySometimes(ns...))), nil
}

// Not builds the unary negation NOT(b).
func Not(b any) (Val, error) {
	operand, err := Expr(b)
	if err != nil {
		return Val{}, err
	}
	if _, err := assertIsBoolean("NOT", operand); err != nil {
		return Val{}, err
	}
	return Wrap(NewUnaryOp("NOT (", ")", operand, sqltype.BOOLEAN, operand.Nullability())), nil
}

// Coalesce builds COALESCE(a1,a2,...). Its type is the first operand's
// declared type; nullability is Sometimes iff every operand is Sometimes.
func Coalesce(items ...any) (Val, error) {
	operands, err := coerceAll(items)
	if err != nil {
		return Val{}, err
	}
	if len(operands) == 0 {
		return Val{}, NewTypeMismatchError("COALESCE", "at least one operand", "none")
	}
	ns := make([]sqltype.Nullability, len(operands))
	for i, o := range operands {
		ns[i] = o.Nullability()
	}
	return Wrap(NewNaryFunc("COALESCE", operands, operands[0].SQLType(), sqltype.AllSometimes(ns...))), nil
}

// CaseWhen builds a CASE expression from native-or-Expression when/then
// pairs plus an optional else value. A nil els means no ELSE clause.
func CaseWhen(pairs [][2]any, els any) (Val, error) {
	arms := make([]WhenThen, len(pairs))
	for i, p := range pairs {
		when, err := Expr(p[0])
		if err != nil {
			return Val{}, err
		}
		then, err := Expr(p[1])
		if err != nil {
			return Val{}, err
		}
		arms[i] = WhenThen{When: when, Then: then}
	}
	var elsExpr Expression
	if els != nil {
		e, err := Expr(els)
		if err != nil {
			return Val{}, err
		}
		elsExpr = e
	}
	e, err := Case(arms, elsExpr)
	if err != nil {
		return Val{}, err
	}
	return Wrap(e), nil
}
