package edges

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/internal/graph"
	"github.com/hupe1980/octonav/internal/octree"
	"github.com/hupe1980/octonav/model"
)

// Result summarises one edge construction run.
type Result struct {
	// StructuralPairs is the number of touching sibling pairs.
	StructuralPairs int
	// BroadPairs is the number of touching non-sibling pairs.
	BroadPairs int
	// Added is the number of edges that were new to the graph.
	Added int
}

// Build registers every leaf as a node of g and connects adjacent leaves.
//
// The broad tier is split into chunks of opts.ChunkSize leaf indices; chunk k
// tests each of its indices against every higher index. Cancelling ctx stops
// scheduling further chunks and Build returns the context error without
// touching the graph's edge set.
func Build(ctx context.Context, g *graph.Graph, leaves []*octree.Cell, opts Options) (Result, error) {
	opts = opts.withDefaults()

	ids := registerNodes(g, leaves)
	boxes := dilatedBounds(leaves, opts.Dilation)

	structural := structuralPairs(leaves, ids, boxes)

	n := len(leaves)
	chunks := (n + opts.ChunkSize - 1) / opts.ChunkSize
	collector := make([][]graph.Edge, chunks)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)

	for k := range chunks {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			lo := k * opts.ChunkSize
			hi := min(lo+opts.ChunkSize, n)
			collector[k] = scanRange(leaves, ids, boxes, lo, hi, opts.MaxEdgeLength, nil)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{StructuralPairs: len(structural)}
	for _, e := range structural {
		if g.AddEdgeID(e.A, e.B) {
			res.Added++
		}
	}
	for _, slot := range collector {
		res.BroadPairs += len(slot)
		for _, e := range slot {
			if g.AddEdgeID(e.A, e.B) {
				res.Added++
			}
		}
	}
	return res, nil
}

// BuildSequential connects the same pairs as Build with a single naive
// all-pairs scan.
func BuildSequential(g *graph.Graph, leaves []*octree.Cell, opts Options) Result {
	opts = opts.withDefaults()

	ids := registerNodes(g, leaves)
	boxes := dilatedBounds(leaves, opts.Dilation)

	var res Result
	for i := range leaves {
		for j := i + 1; j < len(leaves); j++ {
			if !boxes[i].Intersects(boxes[j]) {
				continue
			}
			if leaves[i].Sibling(leaves[j]) {
				res.StructuralPairs++
			} else if tooLong(leaves[i], leaves[j], opts.MaxEdgeLength) {
				continue
			} else {
				res.BroadPairs++
			}
			if g.AddEdgeID(ids[i], ids[j]) {
				res.Added++
			}
		}
	}
	return res
}

func registerNodes(g *graph.Graph, leaves []*octree.Cell) []model.NodeID {
	ids := make([]model.NodeID, len(leaves))
	for i, leaf := range leaves {
		ids[i] = g.AddNode(leaf)
	}
	return ids
}

func dilatedBounds(leaves []*octree.Cell, dilation float32) []geom.Bounds {
	boxes := make([]geom.Bounds, len(leaves))
	for i, leaf := range leaves {
		boxes[i] = leaf.Bounds
		if dilation > 0 {
			boxes[i] = boxes[i].Expand(dilation)
		}
	}
	return boxes
}

// structuralPairs groups leaves by parent and tests each group pairwise.
// Groups are visited in order of their first leaf so the output is stable.
func structuralPairs(leaves []*octree.Cell, ids []model.NodeID, boxes []geom.Bounds) []graph.Edge {
	groups := make(map[*octree.Cell][]int)
	var order []*octree.Cell
	for i, leaf := range leaves {
		if leaf.Parent == nil {
			continue
		}
		if _, ok := groups[leaf.Parent]; !ok {
			order = append(order, leaf.Parent)
		}
		groups[leaf.Parent] = append(groups[leaf.Parent], i)
	}

	var out []graph.Edge
	for _, parent := range order {
		members := groups[parent]
		for x, i := range members {
			for _, j := range members[x+1:] {
				if boxes[i].Intersects(boxes[j]) {
					out = append(out, graph.NewEdge(ids[i], ids[j]))
				}
			}
		}
	}
	return out
}

// scanRange tests each index in [lo, hi) against every higher index and
// appends touching non-sibling pairs to dst.
func scanRange(leaves []*octree.Cell, ids []model.NodeID, boxes []geom.Bounds, lo, hi int, maxLen float32, dst []graph.Edge) []graph.Edge {
	for i := lo; i < hi; i++ {
		bi := boxes[i]
		for j := i + 1; j < len(leaves); j++ {
			if leaves[i].Sibling(leaves[j]) || !bi.Intersects(boxes[j]) {
				continue
			}
			if tooLong(leaves[i], leaves[j], maxLen) {
				continue
			}
			dst = append(dst, graph.NewEdge(ids[i], ids[j]))
		}
	}
	return dst
}

func tooLong(a, b *octree.Cell, maxLen float32) bool {
	return maxLen > 0 && a.Center().DistSq(b.Center()) > maxLen*maxLen
}
