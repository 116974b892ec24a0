// Package scene reads obstacle scenes from YAML files.
//
// A scene lists axis-aligned boxes and triangle meshes and may pin the world
// bounds and the minimum cell size:
//
//	name: warehouse
//	min_cell_size: 0.5
//	bounds:
//	  center: [0, 0, 0]
//	  size: [64, 64, 64]
//	boxes:
//	  - min: [-2, -2, -2]
//	    max: [2, 2, 2]
//	meshes:
//	  - vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
//	    indices: [0, 1, 2]
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/octonav/geom"
)

// ErrInvalidScene is returned for structurally valid YAML that does not
// describe a usable scene.
var ErrInvalidScene = errors.New("invalid scene")

// Vec is a point written as a three element sequence.
type Vec [3]float32

func (v Vec) vec3() geom.Vec3 { return geom.V3(v[0], v[1], v[2]) }

// Bounds is a box given by center and size.
type Bounds struct {
	Center Vec `yaml:"center"`
	Size   Vec `yaml:"size"`
}

// Box is an obstacle given by its min and max corners.
type Box struct {
	Min Vec `yaml:"min"`
	Max Vec `yaml:"max"`
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vec `yaml:"vertices"`
	Indices  []int `yaml:"indices"`
}

// Scene is the decoded scene file.
type Scene struct {
	Name        string  `yaml:"name"`
	MinCellSize float32 `yaml:"min_cell_size,omitempty"`
	Bounds      *Bounds `yaml:"bounds,omitempty"`
	Boxes       []Box   `yaml:"boxes"`
	Meshes      []Mesh  `yaml:"meshes,omitempty"`
}

// Load reads a scene from path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a scene from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Encode writes s as YAML.
func (s *Scene) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}

	return enc.Close()
}

// Validate checks box corners, mesh indices and pinned bounds.
func (s *Scene) Validate() error {
	if s.MinCellSize < 0 {
		return fmt.Errorf("%w: negative min_cell_size", ErrInvalidScene)
	}

	if s.Bounds != nil && s.Bounds.Size.vec3().MinComponent() <= 0 {
		return fmt.Errorf("%w: bounds size must be positive", ErrInvalidScene)
	}

	for i, b := range s.Boxes {
		if b.Max.vec3().Sub(b.Min.vec3()).MinComponent() < 0 {
			return fmt.Errorf("%w: box %d has max below min", ErrInvalidScene, i)
		}
	}

	for i, m := range s.Meshes {
		if len(m.Indices)%3 != 0 {
			return fmt.Errorf("%w: mesh %d index count is not a multiple of 3", ErrInvalidScene, i)
		}

		for _, idx := range m.Indices {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: mesh %d index %d out of range", ErrInvalidScene, i, idx)
			}
		}
	}

	return nil
}

// Obstacles converts the scene geometry.
func (s *Scene) Obstacles() []geom.Obstacle {
	out := make([]geom.Obstacle, 0, len(s.Boxes)+len(s.Meshes))

	for _, b := range s.Boxes {
		out = append(out, geom.NewBox(b.Min.vec3(), b.Max.vec3()))
	}

	for _, m := range s.Meshes {
		vertices := make([]geom.Vec3, len(m.Vertices))
		for i, v := range m.Vertices {
			vertices[i] = v.vec3()
		}

		out = append(out, geom.NewIndexedMesh(vertices, m.Indices))
	}

	return out
}

// WorldBounds returns the pinned bounds, if the scene has any.
func (s *Scene) WorldBounds() (geom.Bounds, bool) {
	if s.Bounds == nil {
		return geom.Bounds{}, false
	}

	return geom.NewBounds(s.Bounds.Center.vec3(), s.Bounds.Size.vec3()), true
}

// FromObstacles builds a scene of boxes from obstacle bounds.
func FromObstacles(name string, obstacles []geom.Obstacle) *Scene {
	s := &Scene{Name: name, Boxes: make([]Box, 0, len(obstacles))}

	for _, o := range obstacles {
		b := o.Bounds()
		lo, hi := b.Min(), b.Max()
		s.Boxes = append(s.Boxes, Box{
			Min: Vec{lo.X, lo.Y, lo.Z},
			Max: Vec{hi.X, hi.Y, hi.Z},
		})
	}

	return s
}
