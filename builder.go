package octonav

import (
	"context"
	"slices"

	"github.com/hupe1980/octonav/geom"
)

// Builder is an immutable fluent builder for a Navigator.
// Each method returns a new builder with the updated configuration.
//
// Example:
//
//	nav, err := octonav.NewBuilder().
//	    Obstacles(walls...).
//	    MinCellSize(0.5).
//	    MaxConcurrentSearches(16).
//	    Build(ctx)
type Builder struct {
	obstacles []geom.Obstacle
	bounds    *geom.Bounds
	cfg       Config
	logger    *Logger
	metrics   MetricsCollector
}

// NewBuilder returns a builder with DefaultConfig.
func NewBuilder() Builder {
	return Builder{cfg: DefaultConfig()}
}

// Obstacles adds obstructing geometry.
func (b Builder) Obstacles(obs ...geom.Obstacle) Builder {
	b.obstacles = append(slices.Clip(b.obstacles), obs...)
	return b
}

// Bounds pins the world volume. When unset, the cube enclosing all
// obstacles is used.
func (b Builder) Bounds(bounds geom.Bounds) Builder {
	b.bounds = &bounds
	return b
}

// MinCellSize sets the smallest octree leaf size.
func (b Builder) MinCellSize(size float32) Builder {
	b.cfg.MinCellSize = size
	return b
}

// MaxConcurrentSearches sets the search context pool capacity.
func (b Builder) MaxConcurrentSearches(n int) Builder {
	b.cfg.MaxConcurrentSearches = n
	return b
}

// IterationCap bounds expansions per search.
func (b Builder) IterationCap(n int) Builder {
	b.cfg.IterationCap = n
	return b
}

// Heuristic selects the search heuristic.
func (b Builder) Heuristic(h Heuristic) Builder {
	b.cfg.Heuristic = h
	return b
}

// EdgeDilation grows leaf boxes before the adjacency test.
func (b Builder) EdgeDilation(d float32) Builder {
	b.cfg.EdgeDilation = d
	return b
}

// MaxEdgeLength enables the long edge guard.
func (b Builder) MaxEdgeLength(l float32) Builder {
	b.cfg.MaxEdgeLength = l
	return b
}

// BuildWorkers bounds the edge builder's parallelism.
func (b Builder) BuildWorkers(n int) Builder {
	b.cfg.BuildWorkers = n
	return b
}

// Logger sets the logger.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build creates the Navigator.
func (b Builder) Build(ctx context.Context) (*Navigator, error) {
	bounds := geom.CubicBounds(b.obstacles)
	if b.bounds != nil {
		bounds = *b.bounds
	}

	return BuildNavigation(ctx, b.obstacles, bounds,
		WithConfig(b.cfg),
		WithLogger(b.logger),
		WithMetricsCollector(b.metrics),
	)
}
