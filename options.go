package octonav

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/hupe1980/octonav/internal/astar"
)

// Heuristic selects the cost estimate used by path searches.
type Heuristic uint8

const (
	// HeuristicEuclidean is the straight-line distance between cell
	// centers. Searches using it return shortest paths.
	HeuristicEuclidean Heuristic = iota

	// HeuristicSquaredEuclidean skips the square root. It is not admissible
	// and may return longer paths than necessary.
	HeuristicSquaredEuclidean
)

// String implements fmt.Stringer.
func (h Heuristic) String() string {
	switch h {
	case HeuristicEuclidean:
		return "euclidean"
	case HeuristicSquaredEuclidean:
		return "squared"
	default:
		return fmt.Sprintf("Heuristic(%d)", uint8(h))
	}
}

func (h Heuristic) fn() astar.Heuristic {
	if h == HeuristicSquaredEuclidean {
		return astar.SquaredEuclidean
	}
	return astar.Euclidean
}

// ParseHeuristic maps a heuristic name to its value.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", "euclidean":
		return HeuristicEuclidean, nil
	case "squared", "squared_euclidean":
		return HeuristicSquaredEuclidean, nil
	}
	return 0, &ErrInvalidConfig{Field: "Heuristic", Value: name, cause: ErrUnknownHeuristic}
}

// Config holds navigation build and search settings.
type Config struct {
	// MinCellSize is the smallest octree leaf size. Values <= 0 produce an
	// empty navigation graph.
	MinCellSize float32

	// MaxConcurrentSearches sizes the search context pool and is the default
	// concurrency of schedulers created by the navigator.
	MaxConcurrentSearches int

	// IterationCap bounds expansions per search. 0 selects three times the
	// node count.
	IterationCap int

	// EdgeDilation grows leaf boxes before the adjacency test.
	EdgeDilation float32

	// MaxEdgeLength drops non-sibling edges whose cell centers are farther
	// apart. 0 disables the guard.
	MaxEdgeLength float32

	// BuildWorkers bounds the edge builder's parallelism. 0 selects
	// GOMAXPROCS.
	BuildWorkers int

	Heuristic Heuristic
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MinCellSize:           1,
		MaxConcurrentSearches: runtime.GOMAXPROCS(0),
		Heuristic:             HeuristicEuclidean,
	}
}

// Validate checks c and returns the first invalid field.
func (c Config) Validate() error {
	switch {
	case isNaN(c.MinCellSize):
		return &ErrInvalidConfig{Field: "MinCellSize", Value: c.MinCellSize, cause: ErrNotANumber}
	case c.MaxConcurrentSearches <= 0:
		return &ErrInvalidConfig{Field: "MaxConcurrentSearches", Value: c.MaxConcurrentSearches}
	case c.IterationCap < 0:
		return &ErrInvalidConfig{Field: "IterationCap", Value: c.IterationCap}
	case isNaN(c.EdgeDilation):
		return &ErrInvalidConfig{Field: "EdgeDilation", Value: c.EdgeDilation, cause: ErrNotANumber}
	case c.EdgeDilation < 0:
		return &ErrInvalidConfig{Field: "EdgeDilation", Value: c.EdgeDilation}
	case isNaN(c.MaxEdgeLength):
		return &ErrInvalidConfig{Field: "MaxEdgeLength", Value: c.MaxEdgeLength, cause: ErrNotANumber}
	case c.MaxEdgeLength < 0:
		return &ErrInvalidConfig{Field: "MaxEdgeLength", Value: c.MaxEdgeLength}
	case c.BuildWorkers < 0:
		return &ErrInvalidConfig{Field: "BuildWorkers", Value: c.BuildWorkers}
	case c.Heuristic > HeuristicSquaredEuclidean:
		return &ErrInvalidConfig{Field: "Heuristic", Value: c.Heuristic, cause: ErrUnknownHeuristic}
	}
	return nil
}

func isNaN(f float32) bool { return math.IsNaN(float64(f)) }

type options struct {
	cfg              Config
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures navigation building.
type Option func(*options)

// WithConfig replaces the whole configuration. Options applied after it
// still override individual fields.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithMinCellSize sets the smallest octree leaf size.
func WithMinCellSize(size float32) Option {
	return func(o *options) {
		o.cfg.MinCellSize = size
	}
}

// WithMaxConcurrentSearches sets the search context pool capacity.
func WithMaxConcurrentSearches(n int) Option {
	return func(o *options) {
		o.cfg.MaxConcurrentSearches = n
	}
}

// WithIterationCap bounds expansions per search. 0 restores the default.
func WithIterationCap(n int) Option {
	return func(o *options) {
		o.cfg.IterationCap = n
	}
}

// WithHeuristic selects the search heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *options) {
		o.cfg.Heuristic = h
	}
}

// WithEdgeDilation grows leaf boxes by d before the adjacency test.
func WithEdgeDilation(d float32) Option {
	return func(o *options) {
		o.cfg.EdgeDilation = d
	}
}

// WithMaxEdgeLength enables the long edge guard.
func WithMaxEdgeLength(l float32) Option {
	return func(o *options) {
		o.cfg.MaxEdgeLength = l
	}
}

// WithBuildWorkers bounds the edge builder's parallelism.
func WithBuildWorkers(n int) Option {
	return func(o *options) {
		o.cfg.BuildWorkers = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &octonav.BasicMetricsCollector{}
//	nav, _ := octonav.BuildNavigation(ctx, obstacles, bounds, octonav.WithMetricsCollector(metrics))
//	// ... run searches ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{cfg: DefaultConfig()}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
