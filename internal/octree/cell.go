package octree

import "github.com/hupe1980/octonav/geom"

// Cell is one node of the octree.
//
// A cell owns its children exclusively. After Build returns, cells are
// read-only and may be shared across goroutines.
type Cell struct {
	Bounds geom.Bounds

	// Children is nil for leaves, otherwise the eight octants in
	// geom.Bounds.Octant order.
	Children *[8]*Cell

	// Objects holds the obstacles that intersect this cell.
	Objects []geom.Obstacle

	Parent *Cell
	Depth  int
}

// IsLeaf reports whether c has no children.
func (c *Cell) IsLeaf() bool { return c.Children == nil }

// IsEmpty reports whether c is a traversable leaf.
func (c *Cell) IsEmpty() bool { return c.IsLeaf() && len(c.Objects) == 0 }

// Center returns the center of the cell bounds.
func (c *Cell) Center() geom.Vec3 { return c.Bounds.Center }

// Sibling reports whether c and o share a parent.
func (c *Cell) Sibling(o *Cell) bool {
	return c != o && c.Parent != nil && c.Parent == o.Parent
}
