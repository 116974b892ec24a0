// Package octree implements the spatial subdivision that feeds the
// navigation graph.
//
// A world box is split into eight equal octants until a cell either holds no
// obstructing geometry (an empty leaf) or reaches the minimum cell size (a
// leaf that is occupied if geometry still touches it). Only empty leaves are
// traversable.
//
// Every traversal in this package uses an explicit stack. Subdivision depth
// is controlled by scene geometry, so recursion depth would be too.
package octree
