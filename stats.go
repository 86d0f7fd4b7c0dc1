package sqlight

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// QueryStats holds cumulative execution statistics for a DB. Every field
// is updated atomically, so a snapshot can be taken from any goroutine
// without acquiring the facade's mutex.
type QueryStats struct {
	TotalQueries  atomic.Int64
	TotalExecs    atomic.Int64
	TotalDuration atomic.Int64 // nanoseconds
	SlowQueries   atomic.Int64
	Errors        atomic.Int64
}

// Stats returns a point-in-time snapshot.
func (s *QueryStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:  s.TotalQueries.Load(),
		TotalExecs:    s.TotalExecs.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowQueries:   s.SlowQueries.Load(),
		Errors:        s.Errors.Load(),
	}
}

func (s *QueryStats) record(d time.Duration, isQuery bool, slow bool, failed bool) {
	if isQuery {
		s.TotalQueries.Add(1)
	} else {
		s.TotalExecs.Add(1)
	}
	s.TotalDuration.Add(int64(d))
	if slow {
		s.SlowQueries.Add(1)
	}
	if failed {
		s.Errors.Add(1)
	}
}

// StatsSnapshot is an immutable copy of QueryStats taken at a point in time.
type StatsSnapshot struct {
	TotalQueries  int64
	TotalExecs    int64
	TotalDuration time.Duration
	SlowQueries   int64
	Errors        int64
}

// AvgDuration returns the average duration across both queries and execs.
func (s StatsSnapshot) AvgDuration() time.Duration {
	total := s.TotalQueries + s.TotalExecs
	if total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(total)
}

// String returns a human-readable summary.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"queries=%d execs=%d duration=%s avg=%s slow=%d errors=%d",
		s.TotalQueries, s.TotalExecs, s.TotalDuration, s.AvgDuration(),
		s.SlowQueries, s.Errors,
	)
}

// SlowQueryHook is called, outside the facade's mutex, whenever a
// statement's execution time exceeds the configured slow-query threshold.
type SlowQueryHook func(ctx context.Context, sqlText string, duration time.Duration)
