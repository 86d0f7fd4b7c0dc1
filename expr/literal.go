package expr

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/asmartbear/sqlight/sqltype"
)

// literalExpr is an immutable SQL literal: either a concrete native value of
// its declared type, or a typed NULL.
type literalExpr struct {
	typ    sqltype.Type
	value  any
	isNull bool
}

// NewLiteral builds a Literal of typ wrapping value. value's Go
// representation must already match typ (see the Expr/Literal factory
// functions for coercion from arbitrary native values).
func NewLiteral(typ sqltype.Type, value any) *literalExpr {
	return &literalExpr{typ: typ, value: value}
}

// NewNullLiteral builds a typed NULL literal of typ.
func NewNullLiteral(typ sqltype.Type) *literalExpr {
	return &literalExpr{typ: typ, isNull: true}
}

// SQLType implements Expression.
func (l *literalExpr) SQLType() sqltype.Type { return l.typ }

// Nullability implements Expression. A concrete literal never evaluates to
// NULL; a typed NULL literal always might (from the caller's point of view
// it "sometimes" holds NULL, since it's the value itself).
func (l *literalExpr) Nullability() sqltype.Nullability {
	if l.isNull {
		return sqltype.Sometimes
	}
	return sqltype.Never
}

// IsNull reports whether this literal is a typed NULL.
func (l *literalExpr) IsNull() bool { return l.isNull }

// Value returns the wrapped native value, or nil if this is a typed NULL.
func (l *literalExpr) Value() any { return l.value }

// ToSQL implements Expression. Literals are atomic and ignore grouped.
func (l *literalExpr) ToSQL(bool) string {
	if l.isNull {
		return "NULL"
	}
	switch l.typ {
	case sqltype.TEXT, sqltype.VARCHAR:
		return quoteString(l.value.(string))
	case sqltype.INTEGER:
		return formatInteger(l.value)
	case sqltype.REAL:
		return formatReal(l.value)
	case sqltype.BOOLEAN:
		if l.value.(bool) {
			return "1"
		}
		return "0"
	case sqltype.TIMESTAMP:
		return quoteString(l.value.(time.Time).UTC().Format("2006-01-02T15:04:05.000Z"))
	case sqltype.BLOB:
		return "x'" + hex.EncodeToString(l.value.([]byte)) + "'"
	default:
		return "NULL"
	}
}

// quoteString SQL-quotes s, doubling any interior single quotes.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// formatInteger renders an integer literal regardless of the specific
// native integer type it was constructed from.
func formatInteger(v any) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	default:
		return strconv.FormatInt(toInt64(v), 10)
	}
}

// formatReal renders a floating-point literal.
func formatReal(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	default:
		return strconv.FormatFloat(toFloat64(v), 'g', -1, 64)
	}
}
