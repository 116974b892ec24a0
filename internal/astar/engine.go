package astar

import (
	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/internal/queue"
	"github.com/hupe1980/octonav/internal/searcher"
	"github.com/hupe1980/octonav/model"
)

// DefaultBudgetFactor multiplies the node count to get the default
// iteration cap.
const DefaultBudgetFactor = 3

// Graph is the read-only view of the navigation graph used by the engine.
type Graph interface {
	Len() int
	Neighbors(id model.NodeID) []model.NodeID
	Center(id model.NodeID) geom.Vec3
}

// Result is the outcome of one search.
type Result struct {
	Status model.Status

	// Path runs from start to the goal, or to Best when the goal was not
	// reached. It is empty only for invalid endpoints.
	Path []model.NodeID

	// Cost is the accumulated edge cost along Path.
	Cost float32

	// Expanded is the number of nodes taken off the open set and expanded.
	Expanded int

	// Best is the expanded node with the lowest estimate to the goal.
	Best model.NodeID
}

// Engine runs A* searches over one graph. It holds no per-search state and
// is safe for concurrent use.
type Engine struct {
	graph     Graph
	heuristic Heuristic
	budget    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithHeuristic replaces the Euclidean heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(e *Engine) {
		if h != nil {
			e.heuristic = h
		}
	}
}

// WithIterationCap bounds the number of expansions per search.
// Values <= 0 select DefaultBudgetFactor times the node count.
func WithIterationCap(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.budget = n
		}
	}
}

// New creates an engine for g.
func New(g Graph, optFns ...Option) *Engine {
	e := &Engine{graph: g, heuristic: Euclidean}
	for _, fn := range optFns {
		fn(e)
	}
	if e.budget <= 0 {
		e.budget = max(DefaultBudgetFactor*g.Len(), 1)
	}
	return e
}

// IterationCap returns the per-search expansion budget.
func (e *Engine) IterationCap() int { return e.budget }

// Search finds a path from start to goal.
//
// sc must be sized for the engine's graph and is exclusively used by this
// call. The path is appended to dst[:0]; it never aliases sc, so the context
// may be returned to its pool as soon as Search returns.
func (e *Engine) Search(sc *searcher.Context, start, goal model.NodeID, dst []model.NodeID) Result {
	dst = dst[:0]
	n := e.graph.Len()
	if int(start) >= n || int(goal) >= n || sc.Size() < n {
		return Result{Status: model.StatusUnreachable, Path: dst, Best: model.InvalidNode}
	}

	sc.BeginSearch()

	if start == goal {
		return Result{Status: model.StatusFound, Path: append(dst, start), Best: start}
	}

	goalPos := e.graph.Center(goal)

	sc.Activate(start)
	sc.G[start] = 0
	sc.H[start] = e.heuristic(e.graph.Center(start), goalPos)
	sc.F[start] = sc.H[start]
	sc.Open.PushItem(queue.Item{Node: start, Priority: sc.F[start]})

	best, bestH := start, sc.H[start]
	expanded := 0
	status := model.StatusUnreachable

	for {
		item, ok := sc.Open.PopItem()
		if !ok {
			break
		}
		cur := item.Node
		if sc.IsClosed(cur) || item.Priority > sc.F[cur] {
			continue
		}
		if cur == goal {
			return Result{
				Status:   model.StatusFound,
				Path:     e.reconstruct(sc, goal, dst),
				Cost:     sc.G[goal],
				Expanded: expanded,
				Best:     goal,
			}
		}
		if expanded >= e.budget {
			status = model.StatusBudgetExceeded
			break
		}

		expanded++
		sc.Close(cur)
		if sc.H[cur] < bestH {
			best, bestH = cur, sc.H[cur]
		}

		curPos := e.graph.Center(cur)
		for _, nb := range e.graph.Neighbors(cur) {
			if sc.IsClosed(nb) {
				continue
			}
			nbPos := e.graph.Center(nb)
			g := sc.G[cur] + e.heuristic(curPos, nbPos)

			fresh := !sc.IsActive(nb)
			if fresh {
				sc.Activate(nb)
				sc.H[nb] = e.heuristic(nbPos, goalPos)
			}
			if fresh || g < sc.G[nb] {
				sc.G[nb] = g
				sc.F[nb] = g + sc.H[nb]
				sc.From[nb] = cur
				sc.Open.PushItem(queue.Item{Node: nb, Priority: sc.F[nb]})
			}
		}
	}

	return Result{
		Status:   status,
		Path:     e.reconstruct(sc, best, dst),
		Cost:     sc.G[best],
		Expanded: expanded,
		Best:     best,
	}
}

// reconstruct follows predecessor links from end back to the start and
// appends the forward path to dst.
func (e *Engine) reconstruct(sc *searcher.Context, end model.NodeID, dst []model.NodeID) []model.NodeID {
	sc.Path = sc.Path[:0]
	for id := end; id.Valid() && len(sc.Path) <= sc.Size(); id = sc.From[id] {
		sc.Path = append(sc.Path, id)
	}
	for i := len(sc.Path) - 1; i >= 0; i-- {
		dst = append(dst, sc.Path[i])
	}
	return dst
}
