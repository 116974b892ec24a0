// Package testutil provides testing utilities for octonav.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random scenes and computing exact
// shortest paths to verify search results.
//
// # Random Scenes
//
//	rng := testutil.NewRNG(seed)
//	world := geom.NewBounds(geom.V3(0, 0, 0), geom.Splat(64))
//	obstacles := rng.RandomBoxes(50, world, 1, 8)
//
// # Ground Truth
//
//	cost, ok := testutil.ShortestPathCost(n, neighbors, edgeCost, start, goal)
package testutil
