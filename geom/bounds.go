package geom

import "fmt"

// Bounds is an axis-aligned bounding box stored as center and full size.
//
// The zero value is an empty box at the origin.
type Bounds struct {
	Center Vec3
	Size   Vec3
}

// NewBounds creates a box from its center and full size.
func NewBounds(center, size Vec3) Bounds {
	return Bounds{Center: center, Size: size}
}

// NewBoundsMinMax creates a box spanning min..max.
func NewBoundsMinMax(minCorner, maxCorner Vec3) Bounds {
	return Bounds{
		Center: minCorner.Add(maxCorner).Scale(0.5),
		Size:   maxCorner.Sub(minCorner),
	}
}

// Extents returns the half size.
func (b Bounds) Extents() Vec3 { return b.Size.Scale(0.5) }

// Min returns the minimal corner.
func (b Bounds) Min() Vec3 { return b.Center.Sub(b.Extents()) }

// Max returns the maximal corner.
func (b Bounds) Max() Vec3 { return b.Center.Add(b.Extents()) }

// Volume returns the enclosed volume.
func (b Bounds) Volume() float32 { return b.Size.X * b.Size.Y * b.Size.Z }

// IsEmpty reports whether any size component is zero or negative.
func (b Bounds) IsEmpty() bool { return b.Size.MinComponent() <= 0 }

// Intersects reports whether b and o overlap or touch.
//
// The test compares center distance against the summed half extents on
// every axis, so boxes sharing only a face, edge or corner intersect.
func (b Bounds) Intersects(o Bounds) bool {
	d := b.Center.Sub(o.Center).Abs()
	e := b.Extents().Add(o.Extents())
	return d.X <= e.X && d.Y <= e.Y && d.Z <= e.Z
}

// Contains reports whether p lies inside b (boundary inclusive).
func (b Bounds) Contains(p Vec3) bool {
	d := p.Sub(b.Center).Abs()
	e := b.Extents()
	return d.X <= e.X && d.Y <= e.Y && d.Z <= e.Z
}

// Expand returns b grown by amount on every side.
func (b Bounds) Expand(amount float32) Bounds {
	return Bounds{Center: b.Center, Size: b.Size.Add(Splat(2 * amount))}
}

// Encapsulate returns the smallest box containing both b and o.
func (b Bounds) Encapsulate(o Bounds) Bounds {
	return NewBoundsMinMax(b.Min().Min(o.Min()), b.Max().Max(o.Max()))
}

// EncapsulatePoint returns the smallest box containing b and p.
func (b Bounds) EncapsulatePoint(p Vec3) Bounds {
	return NewBoundsMinMax(b.Min().Min(p), b.Max().Max(p))
}

// Octant returns child i of the eight equal sub-boxes of b.
//
// Bit 0 of i selects the +X half, bit 1 the +Y half and bit 2 the +Z half.
// Each child has half the parent size and is centered a quarter of the
// parent size away from the parent center on every axis.
func (b Bounds) Octant(i int) Bounds {
	q := b.Size.Scale(0.25)
	c := b.Center
	if i&1 == 0 {
		c.X -= q.X
	} else {
		c.X += q.X
	}
	if i&2 == 0 {
		c.Y -= q.Y
	} else {
		c.Y += q.Y
	}
	if i&4 == 0 {
		c.Z -= q.Z
	} else {
		c.Z += q.Z
	}
	return Bounds{Center: c, Size: b.Size.Scale(0.5)}
}

// SqrDistance returns the squared distance from p to the closest point of b.
// Points inside b report 0.
func (b Bounds) SqrDistance(p Vec3) float32 {
	lo, hi := b.Min(), b.Max()
	closest := p.Max(lo).Min(hi)
	return closest.DistSq(p)
}

// String implements fmt.Stringer.
func (b Bounds) String() string {
	return fmt.Sprintf("Bounds{center=%v size=%v}", b.Center, b.Size)
}

// CubicBounds returns a cube enclosing every obstacle.
//
// The obstacle bounds are merged, then the box is squared to its largest
// axis around the merged center so that octree cells stay cubic.
// An empty slice yields the zero Bounds.
func CubicBounds(obstacles []Obstacle) Bounds {
	if len(obstacles) == 0 {
		return Bounds{}
	}
	merged := obstacles[0].Bounds()
	for _, o := range obstacles[1:] {
		merged = merged.Encapsulate(o.Bounds())
	}
	return Bounds{Center: merged.Center, Size: Splat(merged.Size.MaxComponent())}
}
