// Package edges computes adjacency between empty octree leaves.
//
// Adjacency is found in two tiers. The structural tier connects leaves that
// share a parent. The broad tier tests every remaining pair for bounding box
// contact and runs the quadratic scan on a bounded set of workers. Workers
// only append to their own slot of the collector; the discovered pairs are
// drained into the graph by the calling goroutine once all workers are done.
package edges
