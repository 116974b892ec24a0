package octonav

import (
	"context"

	"github.com/hupe1980/octonav/internal/scheduler"
)

// PathRequest asks for a path between two graph cells.
type PathRequest struct {
	Start *Cell
	Goal  *Cell
}

type (
	// Scheduler runs path requests with bounded concurrency and delivers
	// one PathResponse per accepted request on Results.
	Scheduler = scheduler.Scheduler[PathRequest, PathResult]
	// PathResponse is a completed scheduled request.
	PathResponse = scheduler.Response[PathRequest, PathResult]
	// SchedulerStats is a snapshot of scheduler counters.
	SchedulerStats = scheduler.Stats
)

// SchedulerOptions configures NewScheduler.
type SchedulerOptions struct {
	// MaxConcurrent bounds running searches. 0 uses the navigator's
	// MaxConcurrentSearches.
	MaxConcurrent int
	// RequestsPerSecond limits admission. 0 means unlimited.
	RequestsPerSecond float64
	// Burst is the admission bucket size.
	Burst int
	// Buffer is the results channel capacity.
	Buffer int
}

// NewScheduler creates a scheduler that answers requests with RequestPath.
// Callers must drain Results and Close the scheduler when done.
func (n *Navigator) NewScheduler(opts SchedulerOptions) *Scheduler {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = n.cfg.MaxConcurrentSearches
	}

	find := func(_ context.Context, req PathRequest) (PathResult, error) {
		return n.RequestPath(req.Start, req.Goal)
	}

	return scheduler.New(find, scheduler.Options{
		MaxConcurrent:     opts.MaxConcurrent,
		RequestsPerSecond: opts.RequestsPerSecond,
		Burst:             opts.Burst,
		Buffer:            opts.Buffer,
	})
}
