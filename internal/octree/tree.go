package octree

import (
	"iter"

	"github.com/hupe1980/octonav/geom"
)

// Tree is a built octree.
//
// A Tree with a nil Root is valid and represents degenerate input.
type Tree struct {
	Root        *Cell
	MinCellSize float32
}

// Stats summarises the shape of a tree.
type Stats struct {
	Cells       int
	Leaves      int
	EmptyLeaves int
	MaxDepth    int
}

// Build subdivides world around obstacles.
//
// A cell keeps only the obstacles that intersect it. A cell that keeps none
// becomes an empty leaf. A cell whose smallest side is at most minCellSize
// becomes a leaf as well, occupied if it kept any obstacle. All other cells
// are split into eight octants, and their obstacles are offered to each
// child.
//
// An empty world, no obstacles or a non-positive minCellSize produce a tree
// with a nil root.
func Build(world geom.Bounds, obstacles []geom.Obstacle, minCellSize float32) *Tree {
	t := &Tree{MinCellSize: minCellSize}
	if world.IsEmpty() || len(obstacles) == 0 || minCellSize <= 0 {
		return t
	}

	t.Root = &Cell{Bounds: world}
	t.Root.Objects = filterIntersecting(obstacles, world)

	stack := []*Cell{t.Root}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(c.Objects) == 0 || c.Bounds.Size.MinComponent() <= minCellSize {
			continue
		}

		var children [8]*Cell
		for i := range children {
			b := c.Bounds.Octant(i)
			children[i] = &Cell{
				Bounds:  b,
				Objects: filterIntersecting(c.Objects, b),
				Parent:  c,
				Depth:   c.Depth + 1,
			}
		}
		c.Children = &children

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return t
}

func filterIntersecting(obstacles []geom.Obstacle, b geom.Bounds) []geom.Obstacle {
	var kept []geom.Obstacle
	for _, o := range obstacles {
		if o.Intersects(b) {
			kept = append(kept, o)
		}
	}
	return kept
}

// Walk yields every cell depth-first, parents before children and octants
// in ascending order. Returning false from the loop body stops the walk.
func Walk(root *Cell) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		if root == nil {
			return
		}
		stack := []*Cell{root}
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(c) {
				return
			}
			if c.Children != nil {
				for i := 7; i >= 0; i-- {
					stack = append(stack, c.Children[i])
				}
			}
		}
	}
}

// CollectEmptyLeaves returns every empty leaf below root in Walk order.
func CollectEmptyLeaves(root *Cell) []*Cell {
	var leaves []*Cell
	for c := range Walk(root) {
		if c.IsEmpty() {
			leaves = append(leaves, c)
		}
	}
	return leaves
}

// EmptyLeaves returns the tree's empty leaves.
func (t *Tree) EmptyLeaves() []*Cell { return CollectEmptyLeaves(t.Root) }

// Stats walks the tree once and reports its shape.
func (t *Tree) Stats() Stats {
	var s Stats
	for c := range Walk(t.Root) {
		s.Cells++
		s.MaxDepth = max(s.MaxDepth, c.Depth)
		if c.IsLeaf() {
			s.Leaves++
			if c.IsEmpty() {
				s.EmptyLeaves++
			}
		}
	}
	return s
}

// Leaf returns the deepest cell containing p, or nil if p is outside the
// tree.
func (t *Tree) Leaf(p geom.Vec3) *Cell {
	c := t.Root
	if c == nil || !c.Bounds.Contains(p) {
		return nil
	}
	for !c.IsLeaf() {
		c = c.Children[octantIndex(c.Bounds.Center, p)]
	}
	return c
}

func octantIndex(center, p geom.Vec3) int {
	i := 0
	if p.X > center.X {
		i |= 1
	}
	if p.Y > center.Y {
		i |= 2
	}
	if p.Z > center.Z {
		i |= 4
	}
	return i
}

// FindClosestCell returns the empty leaf nearest to p.
//
// If p lies inside an empty leaf that leaf is returned. Otherwise the tree is
// searched branch-and-bound by box distance, so occupied cells and points
// outside the world resolve to the nearest traversable cell. Ties on box
// distance are broken by center distance. The second result is false when
// the tree has no empty leaf.
func (t *Tree) FindClosestCell(p geom.Vec3) (*Cell, bool) {
	if leaf := t.Leaf(p); leaf != nil && leaf.IsEmpty() {
		return leaf, true
	}
	if t.Root == nil {
		return nil, false
	}

	var (
		best       *Cell
		bestDist   float32
		bestCenter float32
	)

	stack := []*Cell{t.Root}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := c.Bounds.SqrDistance(p)
		if best != nil && d > bestDist {
			continue
		}

		if c.IsLeaf() {
			if !c.IsEmpty() {
				continue
			}
			cd := c.Bounds.Center.DistSq(p)
			if best == nil || d < bestDist || (d == bestDist && cd < bestCenter) {
				best, bestDist, bestCenter = c, d, cd
			}
			continue
		}

		for _, child := range c.Children {
			stack = append(stack, child)
		}
	}

	return best, best != nil
}
