// Package config loads command line settings for octonav from a YAML file,
// OCTONAV_* environment variables and built-in defaults.
package config

import "errors"

// Config is the top-level configuration struct for the octonav CLI.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Navigation NavigationConfig `mapstructure:"navigation"`
	Search     SearchConfig     `mapstructure:"search"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Log        LogConfig        `mapstructure:"log"`
}

// NavigationConfig holds tree and graph build settings.
type NavigationConfig struct {
	MinCellSize   float64 `mapstructure:"min_cell_size"`
	EdgeDilation  float64 `mapstructure:"edge_dilation"`
	MaxEdgeLength float64 `mapstructure:"max_edge_length"`
	BuildWorkers  int     `mapstructure:"build_workers"`
}

// SearchConfig holds per-search settings.
type SearchConfig struct {
	MaxConcurrent int    `mapstructure:"max_concurrent"`
	IterationCap  int    `mapstructure:"iteration_cap"`
	Heuristic     string `mapstructure:"heuristic"`
}

// SchedulerConfig holds request admission settings.
type SchedulerConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	Buffer            int     `mapstructure:"buffer"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default values.
const (
	DefaultMinCellSize   = 1.0
	DefaultMaxConcurrent = 8
	DefaultHeuristic     = HeuristicEuclidean
	DefaultBuffer        = 64
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Heuristic names.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicSquared   = "squared"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidMinCellSize indicates the minimum cell size is not positive.
	ErrInvalidMinCellSize = errors.New("navigation.min_cell_size must be positive")
	// ErrInvalidEdgeDilation indicates the edge dilation is negative.
	ErrInvalidEdgeDilation = errors.New("navigation.edge_dilation must be non-negative")
	// ErrInvalidMaxEdgeLength indicates the edge length guard is negative.
	ErrInvalidMaxEdgeLength = errors.New("navigation.max_edge_length must be non-negative")
	// ErrInvalidBuildWorkers indicates the build worker count is negative.
	ErrInvalidBuildWorkers = errors.New("navigation.build_workers must be non-negative")
	// ErrInvalidMaxConcurrent indicates the search concurrency is not positive.
	ErrInvalidMaxConcurrent = errors.New("search.max_concurrent must be positive")
	// ErrInvalidIterationCap indicates the iteration cap is negative.
	ErrInvalidIterationCap = errors.New("search.iteration_cap must be non-negative")
	// ErrInvalidHeuristic indicates an unknown heuristic name.
	ErrInvalidHeuristic = errors.New("search.heuristic must be euclidean or squared")
	// ErrInvalidRate indicates a negative admission rate.
	ErrInvalidRate = errors.New("scheduler.requests_per_second must be non-negative")
	// ErrInvalidBuffer indicates a negative result buffer.
	ErrInvalidBuffer = errors.New("scheduler.buffer must be non-negative")
	// ErrInvalidLogFormat indicates an unknown log format.
	ErrInvalidLogFormat = errors.New("log.format must be text or json")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if err := c.validateNavigation(); err != nil {
		return err
	}

	if err := c.validateSearch(); err != nil {
		return err
	}

	if c.Scheduler.RequestsPerSecond < 0 {
		return ErrInvalidRate
	}

	if c.Scheduler.Buffer < 0 {
		return ErrInvalidBuffer
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}

func (c *Config) validateNavigation() error {
	if c.Navigation.MinCellSize <= 0 {
		return ErrInvalidMinCellSize
	}

	if c.Navigation.EdgeDilation < 0 {
		return ErrInvalidEdgeDilation
	}

	if c.Navigation.MaxEdgeLength < 0 {
		return ErrInvalidMaxEdgeLength
	}

	if c.Navigation.BuildWorkers < 0 {
		return ErrInvalidBuildWorkers
	}

	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.MaxConcurrent <= 0 {
		return ErrInvalidMaxConcurrent
	}

	if c.Search.IterationCap < 0 {
		return ErrInvalidIterationCap
	}

	switch c.Search.Heuristic {
	case HeuristicEuclidean, HeuristicSquared:
	default:
		return ErrInvalidHeuristic
	}

	return nil
}
