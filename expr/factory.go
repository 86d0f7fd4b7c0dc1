package expr

import (
	"reflect"
	"time"

	"github.com/asmartbear/sqlight/sqltype"
)

// Expr coerces an arbitrary native Go value (or an already-built
// Expression) into an Expression. Supported native kinds: string -> TEXT,
// integer-valued numbers -> INTEGER, other numbers -> REAL, bool ->
// BOOLEAN, time.Time -> TIMESTAMP, []byte -> BLOB. Anything else fails
// with an *InvalidLiteralError.
func Expr(x any) (Expression, error) {
	switch v := x.(type) {
	case Expression:
		return v, nil
	case nil:
		return nil, NewInvalidLiteralError(x)
	case string:
		return NewLiteral(sqltype.TEXT, v), nil
	case bool:
		return NewLiteral(sqltype.BOOLEAN, v), nil
	case time.Time:
		return NewLiteral(sqltype.TIMESTAMP, v), nil
	case []byte:
		return NewLiteral(sqltype.BLOB, v), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return NewLiteral(sqltype.INTEGER, v), nil
	case float32:
		if float32(int64(v)) == v {
			return NewLiteral(sqltype.INTEGER, int64(v)), nil
		}
		return NewLiteral(sqltype.REAL, v), nil
	case float64:
		if float64(int64(v)) == v {
			return NewLiteral(sqltype.INTEGER, int64(v)), nil
		}
		return NewLiteral(sqltype.REAL, v), nil
	default:
		return nil, NewInvalidLiteralError(x)
	}
}

// MustExpr is Expr but panics on error; useful for constructing fixtures in
// tests where the input is known to be coercible.
func MustExpr(x any) Expression {
	e, err := Expr(x)
	if err != nil {
		panic(err)
	}
	return e
}

// Literal forces a target type and accepts an explicit nil (or a typed
// nil) to build a typed NULL literal with Sometimes nullability. A non-nil
// value is coerced into typ's native representation via Expr and
// re-wrapped under typ; a value whose native kind cannot represent typ
// fails with an *InvalidLiteralError. This is the Val-returning counterpart of Expr,
// letting callers construct nullable comparands explicitly.
func Literal(typ sqltype.Type, value any) (Val, error) {
	e, err := NullableLiteral(typ, value)
	if err != nil {
		return Val{}, err
	}
	return Wrap(e), nil
}

// NullableLiteral is the Expression-returning counterpart of Literal.
func NullableLiteral(typ sqltype.Type, value any) (Expression, error) {
	if value == nil || isNilValue(value) {
		return NewNullLiteral(typ), nil
	}
	e, err := Expr(value)
	if err != nil {
		return nil, err
	}
	lit, ok := e.(*literalExpr)
	if !ok {
		return nil, NewInvalidLiteralError(value)
	}
	switch {
	case lit.typ.Compatible(typ):
		return NewLiteral(typ, lit.Value()), nil
	case typ == sqltype.REAL && lit.typ == sqltype.INTEGER:
		return NewLiteral(typ, float64(toInt64(lit.Value()))), nil
	default:
		return nil, NewInvalidLiteralError(value)
	}
}

// isNilValue reports whether v is a nil interface or a nil pointer/slice/map
// held inside a non-nil interface.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// TypeOf descends variadically through nested slices and nil holes to find
// the first concrete expression's SQL type. ok is false if none was found.
func TypeOf(items ...any) (typ sqltype.Type, ok bool) {
	for _, item := range items {
		if item == nil {
			continue
		}
		if nested, isSlice := item.([]any); isSlice {
			if t, found := TypeOf(nested...); found {
				return t, true
			}
			continue
		}
		if e, isExpr := item.(Expression); isExpr {
			return e.SQLType(), true
		}
		if isNilValue(item) {
			continue
		}
		if e, err := Expr(item); err == nil {
			return e.SQLType(), true
		}
	}
	return 0, false
}

func toInt64(v any) int64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return rv.Float()
	}
	return 0
}
