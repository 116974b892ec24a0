package octonav

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/internal/astar"
	"github.com/hupe1980/octonav/internal/edges"
	"github.com/hupe1980/octonav/internal/graph"
	"github.com/hupe1980/octonav/internal/octree"
	"github.com/hupe1980/octonav/internal/searcher"
	"github.com/hupe1980/octonav/model"
)

type (
	// Cell is an octree cell. Graph nodes are empty leaf cells.
	Cell = octree.Cell
	// Tree is the spatial subdivision of the world.
	Tree = octree.Tree
	// TreeStats summarises the octree shape.
	TreeStats = octree.Stats
	// Graph is the adjacency graph over empty leaves.
	Graph = graph.Graph
	// NodeID is a dense graph node id.
	NodeID = model.NodeID
	// Status is the terminal state of a search.
	Status = model.Status
	// PoolStats reports search context pool usage.
	PoolStats = searcher.PoolStats
)

// Search outcomes.
const (
	StatusFound          = model.StatusFound
	StatusUnreachable    = model.StatusUnreachable
	StatusBudgetExceeded = model.StatusBudgetExceeded
)

// PathResult is the outcome of one path request.
//
// Cells always starts at the start cell. For StatusFound it ends at the
// goal; otherwise it ends at the explored cell closest to the goal.
type PathResult struct {
	Status   Status
	Cells    []*Cell
	NodeIDs  []NodeID
	Cost     float32
	Expanded int
}

// Waypoints returns the centers of the path cells.
func (r PathResult) Waypoints() []geom.Vec3 {
	out := make([]geom.Vec3, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Center()
	}
	return out
}

// Stats describes a built navigation.
type Stats struct {
	Tree             TreeStats
	Nodes            int
	Edges            int
	StructuralPairs  int
	BroadPairs       int
	Components       int
	LargestComponent int
	IsolatedNodes    int
	IterationCap     int
	BuildDuration    time.Duration
	Pool             PoolStats
}

// Navigator answers path queries over a built navigation graph.
//
// A Navigator is immutable after BuildNavigation returns and is safe for
// concurrent use. Each search rents its scratch state from a bounded pool.
type Navigator struct {
	cfg     Config
	tree    *octree.Tree
	graph   *graph.Graph
	comps   *graph.Components
	engine  *astar.Engine
	pool    *searcher.Pool
	stats   Stats
	logger  *Logger
	metrics MetricsCollector
}

// BuildNavigation subdivides bounds around obstacles, connects the empty
// leaves and prepares the search context pool.
//
// Empty geometry, an empty volume or a non-positive minimum cell size
// produce a navigator with an empty graph; every path request on it fails
// with ErrUnknownCell. Cancelling ctx aborts edge construction.
func BuildNavigation(ctx context.Context, obstacles []geom.Obstacle, bounds geom.Bounds, optFns ...Option) (*Navigator, error) {
	o := applyOptions(optFns)
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	tree := octree.Build(bounds, obstacles, o.cfg.MinCellSize)
	leaves := tree.EmptyLeaves()

	g := graph.New(len(leaves))
	res, err := edges.Build(ctx, g, leaves, edges.Options{
		Workers:       o.cfg.BuildWorkers,
		Dilation:      o.cfg.EdgeDilation,
		MaxEdgeLength: o.cfg.MaxEdgeLength,
	})
	if err != nil {
		err = fmt.Errorf("build edges: %w", err)
		d := time.Since(start)
		o.logger.LogBuild(ctx, Stats{BuildDuration: d}, err)
		o.metricsCollector.RecordBuild(0, 0, d, err)
		return nil, err
	}

	comps := g.Components()
	engine := astar.New(g,
		astar.WithHeuristic(o.cfg.Heuristic.fn()),
		astar.WithIterationCap(o.cfg.IterationCap),
	)

	n := &Navigator{
		cfg:     o.cfg,
		tree:    tree,
		graph:   g,
		comps:   comps,
		engine:  engine,
		pool:    searcher.NewPool(g.Len(), o.cfg.MaxConcurrentSearches),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}

	n.stats = Stats{
		Tree:             tree.Stats(),
		Nodes:            g.Len(),
		Edges:            g.EdgeCount(),
		StructuralPairs:  res.StructuralPairs,
		BroadPairs:       res.BroadPairs,
		Components:       comps.Count(),
		LargestComponent: comps.Largest(),
		IsolatedNodes:    comps.Isolated(),
		IterationCap:     engine.IterationCap(),
		BuildDuration:    time.Since(start),
	}

	n.logger.LogBuild(ctx, n.stats, nil)
	n.metrics.RecordBuild(n.stats.Nodes, n.stats.Edges, n.stats.BuildDuration, nil)

	return n, nil
}

// Config returns the configuration the navigator was built with.
func (n *Navigator) Config() Config { return n.cfg }

// Tree returns the octree. It must not be modified.
func (n *Navigator) Tree() *Tree { return n.tree }

// Graph returns the navigation graph. It must not be modified.
func (n *Navigator) Graph() *Graph { return n.graph }

// Stats returns build statistics and the current pool counters.
func (n *Navigator) Stats() Stats {
	s := n.stats
	s.Pool = n.pool.Stats()
	return s
}

// FindClosestCell returns the traversable cell nearest to pos.
func (n *Navigator) FindClosestCell(pos geom.Vec3) (*Cell, bool) {
	return n.tree.FindClosestCell(pos)
}

// Reachable reports whether a path exists between two cells.
func (n *Navigator) Reachable(a, b *Cell) bool {
	ida, ok := n.graph.FindNode(a)
	if !ok {
		return false
	}
	idb, ok := n.graph.FindNode(b)
	if !ok {
		return false
	}
	return n.comps.Connected(ida, idb)
}

// RequestPath searches a path between two graph cells.
//
// Unreachable goals and exhausted budgets are not errors; they are reported
// through PathResult.Status together with the best partial path. The only
// error is ErrUnknownCell for cells outside the graph.
func (n *Navigator) RequestPath(start, goal *Cell) (PathResult, error) {
	sid, ok := n.graph.FindNode(start)
	if !ok {
		return PathResult{}, unknownCell(n.graph.Len() == 0)
	}
	gid, ok := n.graph.FindNode(goal)
	if !ok {
		return PathResult{}, unknownCell(n.graph.Len() == 0)
	}
	return n.search(sid, gid), nil
}

// FindPath resolves both positions to their closest cells and searches a
// path between them.
func (n *Navigator) FindPath(from, to geom.Vec3) (PathResult, error) {
	start, ok := n.FindClosestCell(from)
	if !ok {
		return PathResult{}, unknownCell(n.graph.Len() == 0)
	}
	goal, ok := n.FindClosestCell(to)
	if !ok {
		return PathResult{}, unknownCell(n.graph.Len() == 0)
	}
	return n.RequestPath(start, goal)
}

func (n *Navigator) search(start, goal NodeID) PathResult {
	began := time.Now()

	sc := n.pool.Rent()
	defer n.pool.Return(sc)

	n.metrics.RecordPoolRent(sc.Overflow())
	if sc.Overflow() {
		n.logger.LogPoolOverflow(context.Background(), n.pool.Stats())
	}

	res := n.engine.Search(sc, start, goal, nil)

	out := PathResult{
		Status:   res.Status,
		Cells:    make([]*Cell, len(res.Path)),
		NodeIDs:  res.Path,
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}
	for i, id := range res.Path {
		out.Cells[i] = n.graph.Cell(id)
	}

	d := time.Since(began)
	n.metrics.RecordSearch(out.Status, out.Expanded, d)
	n.logger.LogSearch(context.Background(), out, d)

	return out
}
