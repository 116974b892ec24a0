package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/octonav/geom"
	"github.com/hupe1980/octonav/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Float32Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float32Range(minVal, maxVal float32) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float32()*(maxVal-minVal)
}

// RandomPoint returns a point uniformly distributed inside b.
func (r *RNG) RandomPoint(b geom.Bounds) geom.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pointLocked(b)
}

func (r *RNG) pointLocked(b geom.Bounds) geom.Vec3 {
	lo := b.Min()
	return geom.Vec3{
		X: lo.X + r.rand.Float32()*b.Size.X,
		Y: lo.Y + r.rand.Float32()*b.Size.Y,
		Z: lo.Z + r.rand.Float32()*b.Size.Z,
	}
}

// RandomBoxes generates num box obstacles centered inside world with every
// side length drawn from [minSize, maxSize).
func (r *RNG) RandomBoxes(num int, world geom.Bounds, minSize, maxSize float32) []geom.Obstacle {
	r.mu.Lock()
	defer r.mu.Unlock()

	obstacles := make([]geom.Obstacle, num)
	span := maxSize - minSize
	for i := range num {
		center := r.pointLocked(world)
		size := geom.Vec3{
			X: minSize + r.rand.Float32()*span,
			Y: minSize + r.rand.Float32()*span,
			Z: minSize + r.rand.Float32()*span,
		}
		obstacles[i] = geom.Box{B: geom.NewBounds(center, size)}
	}
	return obstacles
}

// ClusteredBoxes generates num boxes grouped around clusters random centers.
// spread is the maximum offset of a box center from its cluster center.
// Useful for scenes with dense rubble and large open areas.
func (r *RNG) ClusteredBoxes(num, clusters int, world geom.Bounds, size, spread float32) []geom.Obstacle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if clusters <= 0 {
		clusters = 1
	}
	centers := make([]geom.Vec3, clusters)
	for i := range centers {
		centers[i] = r.pointLocked(world)
	}

	obstacles := make([]geom.Obstacle, num)
	for i := range num {
		c := centers[r.rand.Intn(clusters)]
		offset := geom.Vec3{
			X: (r.rand.Float32()*2 - 1) * spread,
			Y: (r.rand.Float32()*2 - 1) * spread,
			Z: (r.rand.Float32()*2 - 1) * spread,
		}
		obstacles[i] = geom.Box{B: geom.NewBounds(c.Add(offset), geom.Splat(size))}
	}
	return obstacles
}

// WallWithHole returns a slab across the X axis of world at x = 0 with a
// square opening of side hole centered on the Y/Z origin. The slab is built
// from four boxes around the opening.
func WallWithHole(world geom.Bounds, thickness, hole float32) []geom.Obstacle {
	lo, hi := world.Min(), world.Max()
	t, h := thickness/2, hole/2
	return []geom.Obstacle{
		geom.NewBox(geom.V3(-t, lo.Y, lo.Z), geom.V3(t, -h, hi.Z)),
		geom.NewBox(geom.V3(-t, h, lo.Z), geom.V3(t, hi.Y, hi.Z)),
		geom.NewBox(geom.V3(-t, -h, lo.Z), geom.V3(t, h, -h)),
		geom.NewBox(geom.V3(-t, -h, h), geom.V3(t, h, hi.Z)),
	}
}

// ShortestPathCost computes the exact shortest path cost from start to goal
// with Dijkstra's algorithm over n dense node ids. It is quadratic in n and
// meant as ground truth for small test graphs.
func ShortestPathCost(
	n int,
	neighbors func(model.NodeID) []model.NodeID,
	cost func(a, b model.NodeID) float32,
	start, goal model.NodeID,
) (float32, bool) {
	dist := make([]float32, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = float32(math.Inf(1))
	}
	dist[start] = 0

	for {
		cur := -1
		for i := range dist {
			if !done[i] && !math.IsInf(float64(dist[i]), 1) && (cur < 0 || dist[i] < dist[cur]) {
				cur = i
			}
		}
		if cur < 0 {
			return 0, false
		}
		if model.NodeID(cur) == goal {
			return dist[cur], true
		}
		done[cur] = true
		for _, nb := range neighbors(model.NodeID(cur)) {
			if d := dist[cur] + cost(model.NodeID(cur), nb); d < dist[nb] {
				dist[nb] = d
			}
		}
	}
}
