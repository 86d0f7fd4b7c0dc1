package query

import "fmt"

// MissingProjectionError is returned by Select.AsSubquery when the given
// alias was never bound by Select.Select/PassThrough.
type MissingProjectionError struct {
	Alias string
}

// Error implements error.
func (e *MissingProjectionError) Error() string {
	return fmt.Sprintf("query: no projection bound to alias %q", e.Alias)
}

// JoinUsageError is returned when From is called with a join kind/predicate
// that doesn't match its position (base table vs. joined table).
type JoinUsageError struct {
	Reason string
}

// Error implements error.
func (e *JoinUsageError) Error() string {
	return "query: " + e.Reason
}
