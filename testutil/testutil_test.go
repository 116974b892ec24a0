package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/model"
)

func TestRandomBoxes(t *testing.T) {
	rng := NewRNG(4711)
	world := geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(10))

	boxes := rng.RandomBoxes(20, world, 1, 2)

	assert.Len(t, boxes, 20)
	for _, b := range boxes {
		assert.True(t, world.Contains(b.Bounds().Center))
		assert.GreaterOrEqual(t, b.Bounds().Size.MinComponent(), float32(1))
		assert.Less(t, b.Bounds().Size.MaxComponent(), float32(2))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	world := geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(10))
	p1 := rng.RandomPoint(world)

	rng.Reset()
	p2 := rng.RandomPoint(world)

	assert.Equal(t, p1, p2)
}

func TestClusteredBoxes(t *testing.T) {
	rng := NewRNG(7)
	world := geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(100))

	boxes := rng.ClusteredBoxes(50, 3, world, 1, 2)

	assert.Len(t, boxes, 50)
	for _, b := range boxes {
		assert.Equal(t, geom.Splat(1), b.Bounds().Size)
	}
}

func TestWallWithHole(t *testing.T) {
	world := geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(16))
	wall := WallWithHole(world, 2, 4)

	hole := geom.NewBounds(geom.V3(0, 0, 0), geom.V3(2, 3.9, 3.9))
	for _, part := range wall {
		assert.False(t, part.Intersects(hole))
	}
	blocked := geom.NewBounds(geom.V3(0, 6, 0), geom.Splat(1))
	assert.True(t, wall[1].Intersects(blocked))
}

func TestShortestPathCost(t *testing.T) {
	// 0 -1- 1 -1- 2 and a direct 0 -5- 2 shortcut that is longer.
	adj := [][]model.NodeID{{1, 2}, {0, 2}, {0, 1}, {}}
	cost := func(a, b model.NodeID) float32 {
		if (a == 0 && b == 2) || (a == 2 && b == 0) {
			return 5
		}
		return 1
	}
	neighbors := func(id model.NodeID) []model.NodeID { return adj[id] }

	c, ok := ShortestPathCost(4, neighbors, cost, 0, 2)
	assert.True(t, ok)
	assert.Equal(t, float32(2), c)

	_, ok = ShortestPathCost(4, neighbors, cost, 0, 3)
	assert.False(t, ok)
}
