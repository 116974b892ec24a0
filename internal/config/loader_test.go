package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/octonav/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "octonav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.InDelta(t, config.DefaultMinCellSize, cfg.Navigation.MinCellSize, 1e-9)
	assert.Equal(t, config.DefaultMaxConcurrent, cfg.Search.MaxConcurrent)
	assert.Equal(t, config.HeuristicEuclidean, cfg.Search.Heuristic)
	assert.Equal(t, config.DefaultBuffer, cfg.Scheduler.Buffer)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
navigation:
  min_cell_size: 0.5
  edge_dilation: 0.1
  build_workers: 2
search:
  max_concurrent: 16
  iteration_cap: 5000
  heuristic: squared
log:
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cfg.Navigation.MinCellSize, 1e-9)
	assert.InDelta(t, 0.1, cfg.Navigation.EdgeDilation, 1e-9)
	assert.Equal(t, 2, cfg.Navigation.BuildWorkers)
	assert.Equal(t, 16, cfg.Search.MaxConcurrent)
	assert.Equal(t, 5000, cfg.Search.IterationCap)
	assert.Equal(t, config.HeuristicSquared, cfg.Search.Heuristic)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, config.DefaultBuffer, cfg.Scheduler.Buffer)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "search:\n  max_concurrent: 2\n")
	t.Setenv("OCTONAV_SEARCH_MAX_CONCURRENT", "12")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Search.MaxConcurrent)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeFile(t, "search:\n  heuristic: manhattan\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidHeuristic)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
