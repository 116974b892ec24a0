// Package octonav builds navigable free space inside a 3-D volume and
// answers concurrent shortest-path queries over it.
//
// # Pipeline
//
// The world volume is subdivided into an octree around the obstructing
// geometry. Every empty leaf becomes a node of an adjacency graph, and
// leaves whose boxes touch are connected. Searches run A* over that graph
// with scratch state rented from a bounded pool, so many searches can run
// at once without allocating per-node state.
//
//	geometry ─▶ octree ─▶ empty leaves ─▶ edges ─▶ graph ─▶ A* (concurrent)
//
// # Quick Start
//
//	nav, err := octonav.NewBuilder().
//	    Obstacles(geom.NewBox(geom.V3(-1, -1, -1), geom.V3(1, 1, 1))).
//	    Bounds(geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(32))).
//	    MinCellSize(1).
//	    Build(ctx)
//	if err != nil {
//	    return err
//	}
//
//	res, err := nav.FindPath(geom.V3(-10, 0, 0), geom.V3(10, 0, 0))
//	if errors.Is(err, octonav.ErrUnknownCell) {
//	    // position does not resolve to a traversable cell
//	}
//	for _, p := range res.Waypoints() {
//	    fmt.Println(p)
//	}
//
// # Search Outcomes
//
// Every search terminates with a path:
//
//   - StatusFound: the path reaches the goal and is shortest under the
//     Euclidean heuristic.
//   - StatusUnreachable: the goal's component was exhausted; the path
//     leads to the explored cell closest to the goal.
//   - StatusBudgetExceeded: the iteration cap was hit; same fallback.
//
// # Concurrency
//
// A Navigator is read-only after construction. RequestPath and FindPath
// may be called from any number of goroutines. NewScheduler adds bounded
// asynchronous dispatch with a results channel.
package octonav
