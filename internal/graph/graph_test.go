package graph

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/internal/octree"
	"github.com/hupe1980/octonav/model"
)

func cellAt(x float32) *octree.Cell {
	return &octree.Cell{Bounds: geom.NewBounds(geom.V3(x, 0, 0), geom.Splat(1))}
}

func chain(n int) (*Graph, []*octree.Cell) {
	g := New(n)
	cells := make([]*octree.Cell, n)
	for i := range cells {
		cells[i] = cellAt(float32(i))
		g.AddNode(cells[i])
	}
	for i := 1; i < n; i++ {
		g.AddEdge(cells[i-1], cells[i])
	}
	return g, cells
}

func TestAddNode_DenseIDs(t *testing.T) {
	g := New(0)
	for i := range 5 {
		id := g.AddNode(cellAt(float32(i)))
		assert.Equal(t, model.NodeID(i), id)
	}
	assert.Equal(t, 5, g.Len())
	assert.Equal(t, geom.V3(3, 0, 0), g.Center(3))
}

func TestAddNode_Idempotent(t *testing.T) {
	g := New(2)
	c := cellAt(0)
	a := g.AddNode(c)
	b := g.AddNode(c)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, g.Len())
}

func TestAddEdge(t *testing.T) {
	g := New(3)
	a, b, c := cellAt(0), cellAt(1), cellAt(2)
	ida, idb := g.AddNode(a), g.AddNode(b)

	t.Run("new", func(t *testing.T) {
		assert.True(t, g.AddEdge(a, b))
		assert.True(t, g.HasEdge(ida, idb))
		assert.True(t, g.HasEdge(idb, ida))
	})

	t.Run("reverse duplicate", func(t *testing.T) {
		assert.False(t, g.AddEdge(b, a))
		assert.Equal(t, 1, g.EdgeCount())
		assert.Equal(t, []model.NodeID{idb}, g.Neighbors(ida))
		assert.Equal(t, []model.NodeID{ida}, g.Neighbors(idb))
	})

	t.Run("self", func(t *testing.T) {
		assert.False(t, g.AddEdge(a, a))
		assert.Equal(t, 1, g.EdgeCount())
	})

	t.Run("unknown cell", func(t *testing.T) {
		assert.False(t, g.AddEdge(a, c))
		assert.False(t, g.AddEdgeID(ida, 99))
		assert.Equal(t, 1, g.EdgeCount())
	})
}

func TestAddEdge_RepeatedInsertKeepsStructure(t *testing.T) {
	g, cells := chain(6)
	before := slices.Collect(g.Edges())

	for i := 1; i < len(cells); i++ {
		g.AddEdge(cells[i], cells[i-1])
		g.AddEdge(cells[i-1], cells[i])
	}

	assert.Equal(t, before, slices.Collect(g.Edges()))
	assert.Equal(t, 5, g.EdgeCount())
	for id := range model.NodeID(6) {
		assert.LessOrEqual(t, g.Degree(id), 2)
	}
}

func TestFindNode(t *testing.T) {
	g, cells := chain(3)

	id, ok := g.FindNode(cells[2])
	require.True(t, ok)
	assert.Equal(t, model.NodeID(2), id)
	assert.Same(t, cells[2], g.Cell(id))

	_, ok = g.FindNode(cellAt(10))
	assert.False(t, ok)
	assert.Nil(t, g.Cell(model.InvalidNode))
	assert.Nil(t, g.Neighbors(model.InvalidNode))
}

func TestEdges(t *testing.T) {
	g, _ := chain(4)

	var got []Edge
	for e := range g.Edges() {
		assert.Less(t, e.A, e.B)
		got = append(got, e)
	}
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 3}}, got)

	n := 0
	for range g.Edges() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestEdge_Other(t *testing.T) {
	e := NewEdge(7, 3)
	assert.Equal(t, Edge{A: 3, B: 7}, e)
	assert.Equal(t, model.NodeID(7), e.Other(3))
	assert.Equal(t, model.NodeID(3), e.Other(7))
}

func TestComponents(t *testing.T) {
	g, _ := chain(3)
	island := g.AddNode(cellAt(20))
	d := g.AddNode(cellAt(30))
	e := g.AddNode(cellAt(31))
	g.AddEdgeID(d, e)

	comps := g.Components()
	assert.Equal(t, 3, comps.Count())
	assert.Equal(t, 3, comps.Largest())
	assert.Equal(t, 1, comps.Isolated())
	assert.True(t, comps.Connected(0, 2))
	assert.True(t, comps.Connected(d, e))
	assert.False(t, comps.Connected(0, island))
	assert.False(t, comps.Connected(0, d))
	assert.False(t, comps.Connected(0, model.InvalidNode))
	assert.True(t, comps.Members(comps.Label(0)).Contains(2))

	assert.Same(t, comps, g.Components())

	g.AddEdgeID(2, island)
	merged := g.Components()
	assert.NotSame(t, comps, merged)
	assert.Equal(t, 2, merged.Count())
	assert.True(t, merged.Connected(0, island))
}

func TestComponents_Empty(t *testing.T) {
	comps := New(0).Components()
	assert.Equal(t, 0, comps.Count())
	assert.Equal(t, 0, comps.Largest())
}
