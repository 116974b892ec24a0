package geom

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in 3-D space.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Splat returns a vector with all components set to v.
func Splat(v float32) Vec3 { return Vec3{X: v, Y: v, Z: v} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Mul returns the component-wise product.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LenSq returns the squared length.
func (v Vec3) LenSq() float32 { return v.Dot(v) }

// Len returns the Euclidean length. It is computed in float64 so that
// components above the float32 square root range stay finite.
func (v Vec3) Len() float32 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return float32(math.Sqrt(x*x + y*y + z*z))
}

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float32 { return v.Sub(o).Len() }

// DistSq returns the squared Euclidean distance between v and o.
func (v Vec3) DistSq(o Vec3) float32 { return v.Sub(o).LenSq() }

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 { return Vec3{abs32(v.X), abs32(v.Y), abs32(v.Z)} }

// Min returns the component-wise minimum.
func (v Vec3) Min(o Vec3) Vec3 { return Vec3{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)} }

// Max returns the component-wise maximum.
func (v Vec3) Max(o Vec3) Vec3 { return Vec3{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)} }

// MinComponent returns the smallest of X, Y and Z.
func (v Vec3) MinComponent() float32 { return min(v.X, v.Y, v.Z) }

// MaxComponent returns the largest of X, Y and Z.
func (v Vec3) MaxComponent() float32 { return max(v.X, v.Y, v.Z) }

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
