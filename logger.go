package octonav

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/octonav/internal/searcher"
)

// Logger wraps slog.Logger with octonav-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithComponent adds a component field to the logger.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// LogBuild logs a navigation build.
func (l *Logger) LogBuild(ctx context.Context, stats Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "navigation build failed",
			"duration", stats.BuildDuration,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "navigation built",
		"cells", stats.Tree.Cells,
		"depth", stats.Tree.MaxDepth,
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"components", stats.Components,
		"duration", stats.BuildDuration,
	)
}

// LogSearch logs a completed path search.
func (l *Logger) LogSearch(ctx context.Context, res PathResult, d time.Duration) {
	if res.Status.Complete() {
		l.DebugContext(ctx, "path found",
			"waypoints", len(res.Cells),
			"cost", res.Cost,
			"expanded", res.Expanded,
			"duration", d,
		)
		return
	}
	l.DebugContext(ctx, "partial path",
		"status", res.Status.String(),
		"waypoints", len(res.Cells),
		"expanded", res.Expanded,
		"duration", d,
	)
}

// LogPoolOverflow logs a search that ran on an overflow context.
func (l *Logger) LogPoolOverflow(ctx context.Context, stats searcher.PoolStats) {
	l.WarnContext(ctx, "search context pool exhausted",
		"capacity", stats.Capacity,
		"overflows", stats.Overflows,
	)
}
