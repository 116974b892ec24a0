// Package geom defines the 3-D primitives used by octonav.
//
// # Types
//
//   - Vec3: a float32 point or direction
//   - Bounds: an axis-aligned box stored as center and size
//   - Obstacle: anything that can report whether it intersects a Bounds
//
// Two obstacle implementations are provided: Box, a plain axis-aligned box,
// and Mesh, a triangle soup tested per triangle bounding box.
//
//	world := geom.CubicBounds(obstacles)
//	if world.Intersects(cell) { ... }
package geom
