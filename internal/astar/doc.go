// Package astar implements A* over the navigation graph.
//
// Searches borrow all mutable state from a searcher.Context, so one Engine
// can serve any number of concurrent searches as long as each uses its own
// context. Every search ends in one of three states (found, unreachable,
// budget exceeded) and always produces a path; the last two lead to the
// explored node closest to the goal.
package astar
