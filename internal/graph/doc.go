// Package graph implements the navigation graph over empty octree leaves.
//
// Node ids are dense (0..N-1) and assigned by the graph itself in creation
// order, so search scratch state can be kept in flat arrays indexed by id.
// Edges are undirected and deduplicated; each node keeps its own incident
// list so neighbour iteration never scans the edge set.
//
// A Graph is built single-threaded. Once construction is finished it is
// read-only and may be shared by any number of concurrent searches.
package graph
