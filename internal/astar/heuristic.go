package astar

import "github.com/hupe1980/octonav/geom"

// Heuristic estimates the cost between two cell centers. The engine uses the
// same function for edge costs and for the estimate to the goal.
type Heuristic func(a, b geom.Vec3) float32

// Euclidean is the straight-line distance. It never overestimates the
// remaining cost, so searches using it return shortest paths.
func Euclidean(a, b geom.Vec3) float32 { return a.Dist(b) }

// SquaredEuclidean skips the square root.
//
// It is not admissible: squared lengths favour many short hops over one long
// hop, so the returned path can be longer than the shortest route measured in
// distance. Only use it where speed matters more than optimality.
func SquaredEuclidean(a, b geom.Vec3) float32 { return a.DistSq(b) }
