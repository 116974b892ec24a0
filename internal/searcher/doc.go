// Package searcher provides pooled scratch state for path searches.
//
// A Context owns every buffer a single A* run needs: cost arrays indexed by
// node id, predecessor links, closed bits, the open set and a path buffer.
// Slots are tagged with an epoch stamp, so starting a new search is O(1)
// instead of clearing arrays sized to the whole graph.
//
// Contexts are managed by a bounded Pool and rented for exactly one search
// at a time.
package searcher
