// Package commands implements the octonav CLI subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hupe1980/octonav"
	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/internal/config"
	"github.com/hupe1980/octonav/internal/scene"
)

const sceneFlagUsage = "scene file (YAML)"

// ErrNoScene is returned when the --scene flag is not set.
var ErrNoScene = errors.New("scene file is required (use --scene)")

// ErrInvalidPoint is returned for a point flag that is not x,y,z.
var ErrInvalidPoint = errors.New("point must be x,y,z")

// GlobalFlags holds flags shared by all subcommands.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
}

// session is a loaded config, scene and logger.
type session struct {
	cfg    *config.Config
	scene  *scene.Scene
	logger *octonav.Logger
}

func openSession(flags *GlobalFlags, scenePath string, logOut io.Writer) (*session, error) {
	if scenePath == "" {
		return nil, ErrNoScene
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	sc, err := scene.Load(scenePath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log, flags.Verbose, logOut)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, scene: sc, logger: logger}, nil
}

func newLogger(lc config.LogConfig, verbose bool, out io.Writer) (*octonav.Logger, error) {
	if !verbose {
		return octonav.NoopLogger(), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return octonav.NewLogger(slog.NewJSONHandler(out, opts)), nil
	}

	return octonav.NewLogger(slog.NewTextHandler(out, opts)), nil
}

// options maps the loaded config onto navigation options. A scene's own
// min_cell_size wins over the config file.
func (s *session) options() ([]octonav.Option, error) {
	h, err := octonav.ParseHeuristic(s.cfg.Search.Heuristic)
	if err != nil {
		return nil, err
	}

	minCell := float32(s.cfg.Navigation.MinCellSize)
	if s.scene.MinCellSize > 0 {
		minCell = s.scene.MinCellSize
	}

	return []octonav.Option{
		octonav.WithMinCellSize(minCell),
		octonav.WithMaxConcurrentSearches(s.cfg.Search.MaxConcurrent),
		octonav.WithIterationCap(s.cfg.Search.IterationCap),
		octonav.WithHeuristic(h),
		octonav.WithEdgeDilation(float32(s.cfg.Navigation.EdgeDilation)),
		octonav.WithMaxEdgeLength(float32(s.cfg.Navigation.MaxEdgeLength)),
		octonav.WithBuildWorkers(s.cfg.Navigation.BuildWorkers),
		octonav.WithLogger(s.logger),
	}, nil
}

func (s *session) build(ctx context.Context, extra ...octonav.Option) (*octonav.Navigator, error) {
	opts, err := s.options()
	if err != nil {
		return nil, err
	}

	obstacles := s.scene.Obstacles()

	bounds, ok := s.scene.WorldBounds()
	if !ok {
		bounds = geom.CubicBounds(obstacles)
	}

	nav, err := octonav.BuildNavigation(ctx, obstacles, bounds, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", s.scene.Name, err)
	}

	return nav, nil
}

func parsePoint(s string) (geom.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vec3{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}

	var xyz [3]float32

	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
		}

		xyz[i] = float32(f)
	}

	return geom.V3(xyz[0], xyz[1], xyz[2]), nil
}
