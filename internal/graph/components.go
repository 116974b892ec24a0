package graph

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/octonav/model"
)

// Components is a connected component labelling of a graph.
type Components struct {
	label []uint32
	sets  []*roaring.Bitmap
}

// Components labels the connected components of g.
//
// The result is cached until the next mutation. Call it once after
// construction, before the graph is shared, so that concurrent readers see
// the cached value.
func (g *Graph) Components() *Components {
	if g.components != nil {
		return g.components
	}

	n := len(g.cells)
	c := &Components{label: make([]uint32, n)}
	seen := roaring.New()
	stack := make([]model.NodeID, 0, 64)

	for start := range n {
		if seen.Contains(uint32(start)) {
			continue
		}
		label := uint32(len(c.sets))
		members := roaring.New()

		stack = append(stack[:0], model.NodeID(start))
		seen.Add(uint32(start))
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			members.Add(uint32(id))
			c.label[id] = label
			for _, nb := range g.adj[id] {
				if seen.CheckedAdd(uint32(nb)) {
					stack = append(stack, nb)
				}
			}
		}

		members.RunOptimize()
		c.sets = append(c.sets, members)
	}

	g.components = c
	return c
}

// Count returns the number of components.
func (c *Components) Count() int { return len(c.sets) }

// Label returns the component index of id.
func (c *Components) Label(id model.NodeID) int { return int(c.label[id]) }

// Connected reports whether a path exists between a and b.
func (c *Components) Connected(a, b model.NodeID) bool {
	if int(a) >= len(c.label) || int(b) >= len(c.label) {
		return false
	}
	return c.label[a] == c.label[b]
}

// Members returns the node set of component i.
// The bitmap is shared and must not be modified.
func (c *Components) Members(i int) *roaring.Bitmap { return c.sets[i] }

// Largest returns the size of the biggest component, or 0 for an empty graph.
func (c *Components) Largest() int {
	var n uint64
	for _, s := range c.sets {
		n = max(n, s.GetCardinality())
	}
	return int(n)
}

// Isolated returns the number of nodes without any edge.
func (c *Components) Isolated() int {
	n := 0
	for _, s := range c.sets {
		if s.GetCardinality() == 1 {
			n++
		}
	}
	return n
}
