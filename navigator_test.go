package octonav

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/internal/octree"
	"github.com/hupe1980/octonav/testutil"
)

var world = geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(32))

func wallNavigator(t testing.TB, hole float32, opts ...Option) *Navigator {
	t.Helper()
	obstacles := testutil.WallWithHole(world, 2, hole)
	nav, err := BuildNavigation(context.Background(), obstacles, world, append([]Option{WithMinCellSize(1)}, opts...)...)
	require.NoError(t, err)
	return nav
}

func assertConnectedPath(t *testing.T, nav *Navigator, res PathResult) {
	t.Helper()
	require.Len(t, res.NodeIDs, len(res.Cells))
	for i, c := range res.Cells {
		assert.True(t, c.IsEmpty(), "waypoint %d is not traversable", i)
		if i > 0 {
			assert.True(t, nav.Graph().HasEdge(res.NodeIDs[i-1], res.NodeIDs[i]))
		}
	}
}

func TestFindPath_ThroughHole(t *testing.T) {
	nav := wallNavigator(t, 4)

	res, err := nav.FindPath(geom.V3(-10, 5, 5), geom.V3(10, -5, -5))
	require.NoError(t, err)
	require.Equal(t, StatusFound, res.Status)
	assertConnectedPath(t, nav, res)

	crossed := false
	for _, c := range res.Cells {
		p := c.Center()
		if p.X > -1 && p.X < 1 {
			crossed = true
			assert.Less(t, max(p.Y, -p.Y), float32(2))
			assert.Less(t, max(p.Z, -p.Z), float32(2))
		}
	}
	assert.True(t, crossed)
	assert.Greater(t, res.Cost, float32(20))

	wp := res.Waypoints()
	require.Len(t, wp, len(res.Cells))
	assert.Equal(t, res.Cells[0].Center(), wp[0])
}

func TestFindPath_SealedWallReturnsPartialPath(t *testing.T) {
	nav := wallNavigator(t, 0)

	start, ok := nav.FindClosestCell(geom.V3(-10, 0, 0))
	require.True(t, ok)
	goal, ok := nav.FindClosestCell(geom.V3(10, 0, 0))
	require.True(t, ok)
	assert.False(t, nav.Reachable(start, goal))

	res, err := nav.RequestPath(start, goal)
	require.NoError(t, err)
	assert.Equal(t, StatusUnreachable, res.Status)
	require.NotEmpty(t, res.Cells)
	assert.Same(t, start, res.Cells[0])
	assertConnectedPath(t, nav, res)

	last := res.Cells[len(res.Cells)-1]
	assert.Less(t, last.Center().X, float32(0))
	assert.Less(t, last.Center().Dist(goal.Center()), start.Center().Dist(goal.Center()))
}

func TestFindPath_HugeWorldReturnsPartialPath(t *testing.T) {
	// A power of two scale keeps the octree layout identical to the unit
	// wall while squared center distances overflow float32.
	s := float32(math.Ldexp(1, 64))
	huge := geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(32*s))

	nav, err := BuildNavigation(context.Background(), testutil.WallWithHole(huge, 2*s, 0), huge,
		WithMinCellSize(s))
	require.NoError(t, err)
	require.Positive(t, nav.Stats().Nodes)

	start, ok := nav.FindClosestCell(geom.V3(-10*s, 0, 0))
	require.True(t, ok)

	var res PathResult
	require.NotPanics(t, func() {
		res, err = nav.FindPath(geom.V3(-10*s, 0, 0), geom.V3(10*s, 0, 0))
	})
	require.NoError(t, err)

	assert.Equal(t, StatusUnreachable, res.Status)
	require.NotEmpty(t, res.Cells)
	assert.Same(t, start, res.Cells[0])
	assert.Less(t, res.Cells[len(res.Cells)-1].Center().X, float32(0))
	assert.False(t, math.IsInf(float64(res.Cost), 0) || math.IsNaN(float64(res.Cost)))
	assertConnectedPath(t, nav, res)
}

func TestFindPath_BudgetExceeded(t *testing.T) {
	nav := wallNavigator(t, 4, WithIterationCap(5))

	res, err := nav.FindPath(geom.V3(-14, 14, 14), geom.V3(14, -14, -14))
	require.NoError(t, err)
	assert.Equal(t, StatusBudgetExceeded, res.Status)
	assert.Equal(t, 5, res.Expanded)
	assert.NotEmpty(t, res.Cells)
}

func TestRequestPath_UnknownCell(t *testing.T) {
	nav := wallNavigator(t, 4)
	start, ok := nav.FindClosestCell(geom.V3(-10, 0, 0))
	require.True(t, ok)

	foreign := &octree.Cell{Bounds: geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(1))}

	_, err := nav.RequestPath(start, foreign)
	require.ErrorIs(t, err, ErrUnknownCell)
	assert.NotErrorIs(t, err, ErrEmptyNavigation)

	_, err = nav.RequestPath(nil, start)
	require.ErrorIs(t, err, ErrUnknownCell)

	assert.False(t, nav.Reachable(start, foreign))
}

func TestBuildNavigation_DegenerateInput(t *testing.T) {
	tests := []struct {
		name      string
		obstacles []geom.Obstacle
		bounds    geom.Bounds
		minCell   float32
	}{
		{"no geometry", nil, world, 1},
		{"zero volume", testutil.WallWithHole(world, 2, 4), geom.Bounds{}, 1},
		{"zero cell size", testutil.WallWithHole(world, 2, 4), world, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, err := BuildNavigation(context.Background(), tt.obstacles, tt.bounds, WithMinCellSize(tt.minCell))
			require.NoError(t, err)

			stats := nav.Stats()
			assert.Zero(t, stats.Nodes)
			assert.Zero(t, stats.Edges)

			_, ok := nav.FindClosestCell(geom.V3(0, 0, 0))
			assert.False(t, ok)

			_, err = nav.FindPath(geom.V3(-1, 0, 0), geom.V3(1, 0, 0))
			require.ErrorIs(t, err, ErrUnknownCell)
			assert.ErrorIs(t, err, ErrEmptyNavigation)
		})
	}
}

func TestBuildNavigation_InvalidConfig(t *testing.T) {
	_, err := BuildNavigation(context.Background(), nil, world, WithMaxConcurrentSearches(-1))

	var cfgErr *ErrInvalidConfig
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "MaxConcurrentSearches", cfgErr.Field)
}

func TestBuildNavigation_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	metrics := &BasicMetricsCollector{}
	_, err := BuildNavigation(ctx, testutil.WallWithHole(world, 2, 4), world, WithMetricsCollector(metrics))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(1), metrics.GetStats().BuildErrors)
}

func TestNavigator_Stats(t *testing.T) {
	nav := wallNavigator(t, 4, WithMaxConcurrentSearches(3))
	stats := nav.Stats()

	assert.Equal(t, stats.Tree.EmptyLeaves, stats.Nodes)
	assert.Equal(t, stats.Edges, stats.StructuralPairs+stats.BroadPairs)
	assert.Equal(t, 1, stats.Components)
	assert.Equal(t, stats.Nodes, stats.LargestComponent)
	assert.Equal(t, 3*stats.Nodes, stats.IterationCap)
	assert.Equal(t, 3, stats.Pool.Capacity)
	assert.Equal(t, 3, stats.Pool.Idle)
	assert.Positive(t, stats.BuildDuration)
}

func TestNavigator_ConcurrentSearches(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	nav := wallNavigator(t, 4, WithMaxConcurrentSearches(2), WithMetricsCollector(metrics))
	rng := testutil.NewRNG(5)

	type query struct{ from, to geom.Vec3 }
	queries := make([]query, 64)
	want := make([]PathResult, len(queries))
	for i := range queries {
		queries[i] = query{rng.RandomPoint(world), rng.RandomPoint(world)}
		res, err := nav.FindPath(queries[i].from, queries[i].to)
		require.NoError(t, err)
		want[i] = res
	}

	got := make([]PathResult, len(queries))
	var wg sync.WaitGroup
	for i := range queries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := nav.FindPath(queries[i].from, queries[i].to)
			assert.NoError(t, err)
			got[i] = res
		}()
	}
	wg.Wait()

	for i := range queries {
		assert.Equal(t, want[i].NodeIDs, got[i].NodeIDs, "query %d", i)
		assert.Equal(t, StatusFound, got[i].Status)
	}

	pool := nav.Stats().Pool
	assert.Equal(t, uint64(2*len(queries)), pool.Rents)
	assert.Equal(t, pool.Rents, pool.Returns)
	assert.Equal(t, 2, pool.Idle)

	ms := metrics.GetStats()
	assert.Equal(t, int64(2*len(queries)), ms.SearchCount)
	assert.Equal(t, ms.SearchCount, ms.SearchFound)
	assert.Equal(t, int64(pool.Overflows), ms.PoolOverflows)
}

func TestNavigator_Scheduler(t *testing.T) {
	nav := wallNavigator(t, 4, WithMaxConcurrentSearches(4))
	start, _ := nav.FindClosestCell(geom.V3(-10, 0, 0))
	goal, _ := nav.FindClosestCell(geom.V3(10, 0, 0))
	foreign := &octree.Cell{}

	s := nav.NewScheduler(SchedulerOptions{Buffer: 32})

	ids := make(map[string]bool)
	for range 20 {
		id, err := s.Submit(context.Background(), PathRequest{Start: start, Goal: goal})
		require.NoError(t, err)
		ids[id] = true
	}
	badID, err := s.Submit(context.Background(), PathRequest{Start: foreign, Goal: goal})
	require.NoError(t, err)

	require.NoError(t, s.Close())

	n := 0
	for resp := range s.Results() {
		n++
		if resp.ID == badID {
			assert.ErrorIs(t, resp.Err, ErrUnknownCell)
			continue
		}
		assert.True(t, ids[resp.ID])
		require.NoError(t, resp.Err)
		assert.Equal(t, StatusFound, resp.Result.Status)
	}
	assert.Equal(t, 21, n)

	_, err = s.Submit(context.Background(), PathRequest{Start: start, Goal: goal})
	assert.ErrorIs(t, err, ErrClosed)
}

func BenchmarkFindPath(b *testing.B) {
	nav := wallNavigator(b, 4)
	from, to := geom.V3(-12, 8, 8), geom.V3(12, -8, -8)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := nav.FindPath(from, to); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindPathParallel(b *testing.B) {
	nav := wallNavigator(b, 4)
	from, to := geom.V3(-12, 8, 8), geom.V3(12, -8, -8)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := nav.FindPath(from, to); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
