package octonav

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/testutil"
)

func TestBuilder_Immutable(t *testing.T) {
	base := NewBuilder().MinCellSize(2)
	derived := base.MinCellSize(4).IterationCap(10).Heuristic(HeuristicSquaredEuclidean)

	assert.InDelta(t, 2, base.cfg.MinCellSize, 1e-9)
	assert.Zero(t, base.cfg.IterationCap)
	assert.Equal(t, HeuristicEuclidean, base.cfg.Heuristic)
	assert.InDelta(t, 4, derived.cfg.MinCellSize, 1e-9)
	assert.Equal(t, 10, derived.cfg.IterationCap)
}

func TestBuilder_ObstaclesDoNotAlias(t *testing.T) {
	a := geom.NewBox(geom.V3(0, 0, 0), geom.V3(1, 1, 1))
	b := geom.NewBox(geom.V3(2, 2, 2), geom.V3(3, 3, 3))
	c := geom.NewBox(geom.V3(4, 4, 4), geom.V3(5, 5, 5))

	base := NewBuilder().Obstacles(a)
	left := base.Obstacles(b)
	right := base.Obstacles(c)

	require.Len(t, base.obstacles, 1)
	assert.Equal(t, b, left.obstacles[1])
	assert.Equal(t, c, right.obstacles[1])
}

func TestBuilder_Build(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	nav, err := NewBuilder().
		Obstacles(testutil.WallWithHole(world, 2, 4)...).
		Bounds(world).
		MinCellSize(1).
		MaxConcurrentSearches(2).
		EdgeDilation(0).
		MaxEdgeLength(0).
		BuildWorkers(2).
		Logger(NoopLogger()).
		Metrics(metrics).
		Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, nav.Config().MaxConcurrentSearches)
	assert.Positive(t, nav.Stats().Nodes)
	assert.Equal(t, int64(1), metrics.GetStats().BuildCount)

	res, err := nav.FindPath(geom.V3(-10, 0, 0), geom.V3(10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, StatusFound, res.Status)
}

func TestBuilder_DefaultBounds(t *testing.T) {
	box := geom.NewBox(geom.V3(0, 0, 0), geom.V3(8, 2, 2))
	nav, err := NewBuilder().Obstacles(box).MinCellSize(1).Build(context.Background())
	require.NoError(t, err)

	root := nav.Tree().Root
	require.NotNil(t, root)
	assert.Equal(t, geom.V3(4, 1, 1), root.Bounds.Center)
	assert.Equal(t, geom.Splat(8), root.Bounds.Size)
}

func TestBuilder_InvalidConfig(t *testing.T) {
	_, err := NewBuilder().MaxConcurrentSearches(0).Build(context.Background())

	var cfgErr *ErrInvalidConfig
	require.ErrorAs(t, err, &cfgErr)
}
