// Package expr implements sqlight's typed SQL expression algebra: literals,
// column references, operator nodes, and the factory that coerces native Go
// values into them. Every node knows its own SQL type and nullability, and
// renders itself to SQL text given a "grouped" hint that asks it to
// self-parenthesize only when it isn't already syntactically atomic.
package expr

import (
	"strings"

	"github.com/asmartbear/sqlight/sqltype"
)

// Expression is the shared contract every node in the expression tree
// implements. Its SQL type is fixed at construction time; its rendering is
// pure given the grouped hint.
type Expression interface {
	// SQLType returns the expression's declared SQL type.
	SQLType() sqltype.Type
	// Nullability returns the expression's null classification.
	Nullability() sqltype.Nullability
	// ToSQL renders the expression. grouped asks the node to wrap itself in
	// parentheses if it is not already syntactically atomic.
	ToSQL(grouped bool) string
}

// assertIsBoolean returns e typed as BOOLEAN, or a TypeMismatchError.
func assertIsBoolean(op string, e Expression) (Expression, error) {
	if e.SQLType() != sqltype.BOOLEAN {
		return nil, NewTypeMismatchError(op, sqltype.BOOLEAN.String(), e.SQLType().String())
	}
	return e, nil
}

// assertIsNumeric returns e typed as INTEGER/REAL, or a TypeMismatchError.
func assertIsNumeric(op string, e Expression) (Expression, error) {
	if !e.SQLType().IsNumeric() {
		return nil, NewTypeMismatchError(op, "INTEGER or REAL", e.SQLType().String())
	}
	return e, nil
}

// assertIsText returns e typed as TEXT/VARCHAR, or a TypeMismatchError.
func assertIsText(op string, e Expression) (Expression, error) {
	if !e.SQLType().IsText() {
		return nil, NewTypeMismatchError(op, "TEXT or VARCHAR", e.SQLType().String())
	}
	return e, nil
}

// AssertIsBoolean is the public self-asserting query described by the
// expression protocol: it returns e typed appropriately or fails with a
// TypeMismatchError.
func AssertIsBoolean(e Expression) (Expression, error) { return assertIsBoolean("assertIsBoolean", e) }

// AssertIsText is the public self-asserting query for TEXT/VARCHAR.
func AssertIsText(e Expression) (Expression, error) { return assertIsText("assertIsText", e) }

// AssertIsNumeric is the public self-asserting query for INTEGER/REAL.
func AssertIsNumeric(e Expression) (Expression, error) { return assertIsNumeric("assertIsNumeric", e) }

// isFullyParenthesized reports whether s is wrapped, as a whole, in exactly
// one matching pair of outer parentheses.
func isFullyParenthesized(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == len(s)-1
			}
		}
	}
	return false
}

// joinSQL renders each expression with the given grouped hint and joins the
// results with sep.
func joinSQL(exprs []Expression, grouped bool, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.ToSQL(grouped)
	}
	return strings.Join(parts, sep)
}
