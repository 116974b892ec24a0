package graph

import (
	"iter"

	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/internal/octree"
	"github.com/hupe1980/octonav/model"
)

// Edge is an undirected edge with A < B.
type Edge struct {
	A, B model.NodeID
}

// NewEdge normalises the pair so that NewEdge(a, b) == NewEdge(b, a).
func NewEdge(a, b model.NodeID) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Other returns the endpoint of e that is not id.
func (e Edge) Other(id model.NodeID) model.NodeID {
	if e.A == id {
		return e.B
	}
	return e.A
}

// Graph is the adjacency graph over navigable cells.
type Graph struct {
	cells   []*octree.Cell
	centers []geom.Vec3
	adj     [][]model.NodeID
	index   map[*octree.Cell]model.NodeID
	edges   map[Edge]struct{}

	components *Components
}

// New creates an empty graph with room for capacity nodes.
func New(capacity int) *Graph {
	return &Graph{
		cells:   make([]*octree.Cell, 0, capacity),
		centers: make([]geom.Vec3, 0, capacity),
		adj:     make([][]model.NodeID, 0, capacity),
		index:   make(map[*octree.Cell]model.NodeID, capacity),
		edges:   make(map[Edge]struct{}),
	}
}

// AddNode registers cell and returns its id.
// Adding a cell twice returns the id assigned the first time.
func (g *Graph) AddNode(cell *octree.Cell) model.NodeID {
	if id, ok := g.index[cell]; ok {
		return id
	}
	id := model.NodeID(len(g.cells))
	g.cells = append(g.cells, cell)
	g.centers = append(g.centers, cell.Center())
	g.adj = append(g.adj, nil)
	g.index[cell] = id
	g.components = nil
	return id
}

// AddEdge connects the nodes of two cells.
//
// It reports whether a new edge was created. Unknown cells, self edges and
// existing edges (in either direction) are no-ops.
func (g *Graph) AddEdge(a, b *octree.Cell) bool {
	ida, ok := g.index[a]
	if !ok {
		return false
	}
	idb, ok := g.index[b]
	if !ok {
		return false
	}
	return g.AddEdgeID(ida, idb)
}

// AddEdgeID connects two node ids with the same rules as AddEdge.
func (g *Graph) AddEdgeID(a, b model.NodeID) bool {
	if a == b || !g.valid(a) || !g.valid(b) {
		return false
	}
	e := NewEdge(a, b)
	if _, exists := g.edges[e]; exists {
		return false
	}
	g.edges[e] = struct{}{}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	g.components = nil
	return true
}

func (g *Graph) valid(id model.NodeID) bool { return int(id) < len(g.cells) }

// FindNode returns the id of cell. The second result is false when the cell
// is not part of the navigable graph.
func (g *Graph) FindNode(cell *octree.Cell) (model.NodeID, bool) {
	id, ok := g.index[cell]
	return id, ok
}

// Neighbors returns the ids adjacent to id in insertion order.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) Neighbors(id model.NodeID) []model.NodeID {
	if !g.valid(id) {
		return nil
	}
	return g.adj[id]
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id model.NodeID) int { return len(g.Neighbors(id)) }

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b model.NodeID) bool {
	_, ok := g.edges[NewEdge(a, b)]
	return ok
}

// Cell returns the cell behind id, or nil for an unknown id.
func (g *Graph) Cell(id model.NodeID) *octree.Cell {
	if !g.valid(id) {
		return nil
	}
	return g.cells[id]
}

// Center returns the center of the cell behind id.
func (g *Graph) Center(id model.NodeID) geom.Vec3 { return g.centers[id] }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.cells) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges yields every edge once, grouped by the lower endpoint.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for a, nbs := range g.adj {
			for _, b := range nbs {
				if model.NodeID(a) < b && !yield(Edge{A: model.NodeID(a), B: b}) {
					return
				}
			}
		}
	}
}
