package sqlight

import (
	"log/slog"
	"time"
)

// Option configures a DB at Open time.
type Option func(*DB)

// WithLogger sets the logger the facade uses to report failed and slow
// statements. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(db *DB) {
		db.logger = logger
	}
}

// WithSlowQueryThreshold sets the duration above which a statement is
// counted in QueryStats.SlowQueries and passed to the slow-query hook.
// The default is 100ms.
func WithSlowQueryThreshold(d time.Duration) Option {
	return func(db *DB) {
		db.slowThreshold = d
	}
}

// WithSlowQueryHook registers a callback invoked whenever a statement
// exceeds the slow-query threshold. The hook runs after the facade's
// mutex has been released, so it may itself issue further calls on db.
func WithSlowQueryHook(hook SlowQueryHook) Option {
	return func(db *DB) {
		db.slowHook = hook
	}
}
