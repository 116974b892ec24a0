package octonav

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/octonav/model"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// observability package ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordBuild is called after each navigation build.
	RecordBuild(nodes, edges int, duration time.Duration, err error)

	// RecordSearch is called after each path search with its terminal
	// status and the number of expanded nodes.
	RecordSearch(status model.Status, expanded int, duration time.Duration)

	// RecordPoolRent is called for every search context rent. overflow is
	// true when the pool was empty and a context had to be allocated.
	RecordPoolRent(overflow bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordSearch(model.Status, int, time.Duration) {}
func (NoopMetricsCollector) RecordPoolRent(bool)                           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	SearchCount      atomic.Int64
	SearchFound      atomic.Int64
	SearchPartial    atomic.Int64
	SearchBudget     atomic.Int64
	SearchExpanded   atomic.Int64
	SearchTotalNanos atomic.Int64
	PoolRents        atomic.Int64
	PoolOverflows    atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(_, _ int, _ time.Duration, err error) {
	b.BuildCount.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(status model.Status, expanded int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchExpanded.Add(int64(expanded))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	switch status {
	case model.StatusFound:
		b.SearchFound.Add(1)
	case model.StatusUnreachable:
		b.SearchPartial.Add(1)
	case model.StatusBudgetExceeded:
		b.SearchBudget.Add(1)
	}
}

// RecordPoolRent implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPoolRent(overflow bool) {
	b.PoolRents.Add(1)
	if overflow {
		b.PoolOverflows.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		BuildCount:    b.BuildCount.Load(),
		BuildErrors:   b.BuildErrors.Load(),
		SearchCount:   b.SearchCount.Load(),
		SearchFound:   b.SearchFound.Load(),
		SearchPartial: b.SearchPartial.Load(),
		SearchBudget:  b.SearchBudget.Load(),
		PoolRents:     b.PoolRents.Load(),
		PoolOverflows: b.PoolOverflows.Load(),
	}
	if s.SearchCount > 0 {
		s.SearchAvgNanos = b.SearchTotalNanos.Load() / s.SearchCount
		s.SearchAvgExpanded = b.SearchExpanded.Load() / s.SearchCount
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount        int64
	BuildErrors       int64
	SearchCount       int64
	SearchFound       int64
	SearchPartial     int64
	SearchBudget      int64
	SearchAvgNanos    int64
	SearchAvgExpanded int64
	PoolRents         int64
	PoolOverflows     int64
}
