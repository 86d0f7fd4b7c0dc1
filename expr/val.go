package expr

// Val is the concrete, user-facing expression handle. It embeds Expression
// so SQLType/Nullability/ToSQL are promoted automatically, and carries the
// receiver-style sugar methods (.Eq/.Ne/.Add/.And/...) described by the
// expression protocol. The factory and combinator functions (V, Literal,
// Concat, And, Or, Not, Coalesce, CaseWhen) and sqlight/query's column
// handles and AsSubquery return a Val, so callers can keep chaining without
// re-wrapping. The low-level node constructors (Expr, NewNaryOp, InList,
// IsNull, Case, ...) return a bare Expression; pass it to Wrap to chain.
type Val struct {
	Expression
}

// Wrap adapts an already-built Expression into a Val.
func Wrap(e Expression) Val { return Val{Expression: e} }

// V coerces a native value or Expression into a Val (see Expr).
func V(x any) (Val, error) {
	e, err := Expr(x)
	if err != nil {
		return Val{}, err
	}
	return Wrap(e), nil
}

// coerceAll resolves a mix of native values and Expressions to a slice of
// Expression, stopping at the first coercion failure.
func coerceAll(xs []any) ([]Expression, error) {
	out := make([]Expression, len(xs))
	for i, x := range xs {
		e, err := Expr(x)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
