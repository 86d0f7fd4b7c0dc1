// Package sqlight is a statically-typed SQL expression algebra and query
// builder for SQLite, plus a thin mutex-serialized facade over
// database/sql for running the SQL it produces.
//
// The interesting work — the typed expression tree, the SELECT builder,
// and the schema model — lives in the expr, query, and schema
// sub-packages. This root package is the boundary: it opens the
// connection, serializes access to it, runs statements, and marshals
// rows into maps.
package sqlight

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common facade conditions.
var (
	// ErrClosed is returned by any DB method called after Close.
	ErrClosed = errors.New("sqlight: database is closed")

	// ErrNotFound reports that no row matched. QueryOne/SelectOne do not
	// return it: they report an empty result with ok=false and a nil error.
	ErrNotFound = errors.New("sqlight: no matching row")
)

// DriverError wraps an error returned by the underlying database/sql
// driver, tagging it with the SQL text that caused it.
type DriverError struct {
	SQL string
	Err error
}

// Error implements error.
func (e *DriverError) Error() string {
	return fmt.Sprintf("sqlight: %v (sql=%q)", e.Err, e.SQL)
}

// Unwrap allows errors.Is/errors.As to see through to the driver error.
func (e *DriverError) Unwrap() error { return e.Err }

// NewDriverError wraps err with the SQL text that produced it.
func NewDriverError(sqlText string, err error) *DriverError {
	return &DriverError{SQL: sqlText, Err: err}
}

// ConstraintError represents a SQLite constraint violation (UNIQUE, CHECK,
// NOT NULL, FOREIGN KEY) surfaced while running an Insert or CreateTable.
type ConstraintError struct {
	SQL string
	Err error
}

// Error implements error.
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("sqlight: constraint violation: %v (sql=%q)", e.Err, e.SQL)
}

// Unwrap allows errors.Is/errors.As to see through to the driver error.
func (e *ConstraintError) Unwrap() error { return e.Err }

// IsConstraintError reports whether err is (or wraps) a ConstraintError.
func IsConstraintError(err error) bool {
	var e *ConstraintError
	return errors.As(err, &e)
}
