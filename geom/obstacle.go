package geom

// Obstacle is a piece of obstructing geometry.
//
// Implementations must be safe for concurrent reads once constructed.
type Obstacle interface {
	// Bounds returns a box enclosing the whole obstacle.
	Bounds() Bounds
	// Intersects reports whether the obstacle overlaps cell.
	Intersects(cell Bounds) bool
}

// Box is an obstacle that fills its bounds completely.
type Box struct {
	B Bounds
}

// NewBox creates a box obstacle spanning min..max.
func NewBox(minCorner, maxCorner Vec3) Box {
	return Box{B: NewBoundsMinMax(minCorner, maxCorner)}
}

// Bounds implements Obstacle.
func (b Box) Bounds() Bounds { return b.B }

// Intersects implements Obstacle.
func (b Box) Intersects(cell Bounds) bool { return b.B.Intersects(cell) }

// Triangle is a single mesh face in world space.
type Triangle struct {
	A, B, C Vec3
}

// Bounds returns the triangle's bounding box.
func (t Triangle) Bounds() Bounds {
	return NewBoundsMinMax(t.A.Min(t.B).Min(t.C), t.A.Max(t.B).Max(t.C))
}

// Mesh is a triangle soup obstacle.
//
// A cell intersects the mesh if it intersects the bounding box of at least
// one triangle, which is tighter than the mesh's overall box for hollow or
// concave geometry.
type Mesh struct {
	bounds    Bounds
	triangles []Bounds
}

// NewMesh precomputes per-triangle bounds for tris.
func NewMesh(tris []Triangle) *Mesh {
	m := &Mesh{triangles: make([]Bounds, len(tris))}
	for i, t := range tris {
		tb := t.Bounds()
		m.triangles[i] = tb
		if i == 0 {
			m.bounds = tb
		} else {
			m.bounds = m.bounds.Encapsulate(tb)
		}
	}
	return m
}

// NewIndexedMesh builds a mesh from a vertex buffer and a flat index list
// where every three indices form one triangle. Trailing indices that do not
// complete a triangle and out of range indices are ignored.
func NewIndexedMesh(vertices []Vec3, indices []int) *Mesh {
	tris := make([]Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if !validIndex(a, len(vertices)) || !validIndex(b, len(vertices)) || !validIndex(c, len(vertices)) {
			continue
		}
		tris = append(tris, Triangle{A: vertices[a], B: vertices[b], C: vertices[c]})
	}
	return NewMesh(tris)
}

// Bounds implements Obstacle.
func (m *Mesh) Bounds() Bounds { return m.bounds }

// Intersects implements Obstacle.
func (m *Mesh) Intersects(cell Bounds) bool {
	if len(m.triangles) == 0 || !m.bounds.Intersects(cell) {
		return false
	}
	for _, tb := range m.triangles {
		if tb.Intersects(cell) {
			return true
		}
	}
	return false
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int { return len(m.triangles) }

func validIndex(i, n int) bool { return i >= 0 && i < n }
