// Statement statistics and slow-DDL detection for migration runs.

package sql

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// ExecStats holds statement execution statistics for a migration run.
type ExecStats struct {
	// Statements is the total number of statements executed.
	Statements atomic.Int64
	// TotalDuration is the total time spent executing statements.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowStatements is the count of statements exceeding the slow threshold.
	SlowStatements atomic.Int64
	// Errors is the count of statement errors.
	Errors atomic.Int64
}

// Snapshot returns a point-in-time copy of the statistics.
func (s *ExecStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Statements:     s.Statements.Load(),
		TotalDuration:  time.Duration(s.TotalDuration.Load()),
		SlowStatements: s.SlowStatements.Load(),
		Errors:         s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *ExecStats) Reset() {
	s.Statements.Store(0)
	s.TotalDuration.Store(0)
	s.SlowStatements.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of execution statistics.
type StatsSnapshot struct {
	Statements     int64
	TotalDuration  time.Duration
	SlowStatements int64
	Errors         int64
}

// AvgDuration returns the average statement duration.
func (s StatsSnapshot) AvgDuration() time.Duration {
	if s.Statements == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Statements)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"statements=%d duration=%s avg=%s slow=%d errors=%d",
		s.Statements, s.TotalDuration, s.AvgDuration(), s.SlowStatements, s.Errors,
	)
}

// SlowHook is called when a statement exceeds the slow threshold.
type SlowHook func(ctx context.Context, stmt string, duration time.Duration)

// StatsDriver wraps a Driver with statement statistics collection.
// DDL statements routinely rebuild indexes and rewrite tables; the slow
// threshold makes long-running ones visible during an apply.
type StatsDriver struct {
	*Driver
	stats         *ExecStats
	slowThreshold time.Duration
	slowHook      SlowHook
}

// StatsOption configures the StatsDriver.
type StatsOption func(*StatsDriver)

// WithSlowThreshold sets the threshold for slow statement detection.
// Default is one second.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsDriver) {
		s.slowThreshold = d
	}
}

// WithSlowHook sets a callback for slow statements.
func WithSlowHook(hook SlowHook) StatsOption {
	return func(s *StatsDriver) {
		s.slowHook = hook
	}
}

// WithSlowLog logs slow statements to the default logger. A convenience
// wrapper around WithSlowHook.
func WithSlowLog() StatsOption {
	return WithSlowHook(func(_ context.Context, stmt string, duration time.Duration) {
		slog.Warn("slow migration statement", "duration", duration, "stmt", stmt)
	})
}

// NewStatsDriver wraps a Driver with statistics collection.
//
//	drv, _ := sql.Open("postgres", dsn)
//	sdrv := sql.NewStatsDriver(drv, sql.WithSlowLog())
//	// apply migrations through sdrv, then:
//	fmt.Println(sdrv.Stats())
func NewStatsDriver(drv *Driver, opts ...StatsOption) *StatsDriver {
	s := &StatsDriver{
		Driver:        drv,
		stats:         &ExecStats{},
		slowThreshold: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns a snapshot of the collected statistics.
func (s *StatsDriver) Stats() StatsSnapshot {
	return s.stats.Snapshot()
}

// Exec implements the dialect.Exec method with statistics collection.
func (s *StatsDriver) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := s.Driver.Exec(ctx, query, args, v)
	s.observe(ctx, query, time.Since(start), err)
	return err
}

// Query implements the dialect.Query method with statistics collection.
func (s *StatsDriver) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := s.Driver.Query(ctx, query, args, v)
	s.observe(ctx, query, time.Since(start), err)
	return err
}

func (s *StatsDriver) observe(ctx context.Context, stmt string, d time.Duration, err error) {
	s.stats.Statements.Add(1)
	s.stats.TotalDuration.Add(int64(d))
	if err != nil {
		s.stats.Errors.Add(1)
	}
	if d >= s.slowThreshold {
		s.stats.SlowStatements.Add(1)
		if s.slowHook != nil {
			s.slowHook(ctx, stmt, d)
		}
	}
}
