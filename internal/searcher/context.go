package searcher

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/octonav/internal/queue"
	"github.com/hupe1980/octonav/model"
)

var inf = float32(math.Inf(1))

// Context is the reusable scratch state of one search.
//
// Context is NOT thread-safe. It is owned by a single goroutine between
// Rent and Return. Values in G, H, F and From are only meaningful for slots
// where IsActive reports true.
type Context struct {
	G    []float32
	H    []float32
	F    []float32
	From []model.NodeID

	// Open is the open set of the current search.
	Open *queue.PriorityQueue

	// Path is scratch space for path reconstruction.
	Path []model.NodeID

	closed *bitset.BitSet
	stamp  []uint32
	epoch  uint32

	overflow bool
}

// NewContext allocates a context for a graph with n nodes.
func NewContext(n int) *Context {
	return &Context{
		G:      make([]float32, n),
		H:      make([]float32, n),
		F:      make([]float32, n),
		From:   make([]model.NodeID, n),
		Open:   queue.NewMin(min(n, 256)),
		Path:   make([]model.NodeID, 0, min(n, 256)),
		closed: bitset.New(uint(n)),
		stamp:  make([]uint32, n),
	}
}

// BeginSearch invalidates every slot by advancing the epoch and empties the
// open set. When the epoch counter wraps, all stamps are cleared and the
// epoch restarts at 1 so that no stale slot can match.
func (c *Context) BeginSearch() {
	c.epoch++
	if c.epoch == 0 {
		clear(c.stamp)
		c.epoch = 1
	}
	c.Open.Reset()
	c.Path = c.Path[:0]
}

// IsActive reports whether id has been activated in the current search.
func (c *Context) IsActive(id model.NodeID) bool {
	return c.epoch != 0 && c.stamp[id] == c.epoch
}

// Activate initialises the slot of id for the current search:
// infinite g and f, zero h, no predecessor, not closed.
func (c *Context) Activate(id model.NodeID) {
	c.stamp[id] = c.epoch
	c.G[id] = inf
	c.H[id] = 0
	c.F[id] = inf
	c.From[id] = model.InvalidNode
	c.closed.Clear(uint(id))
}

// Close marks an active node as expanded.
func (c *Context) Close(id model.NodeID) { c.closed.Set(uint(id)) }

// IsClosed reports whether id was expanded in the current search.
func (c *Context) IsClosed(id model.NodeID) bool {
	return c.IsActive(id) && c.closed.Test(uint(id))
}

// Size returns the number of node slots.
func (c *Context) Size() int { return len(c.stamp) }

// Epoch returns the current epoch counter.
func (c *Context) Epoch() uint32 { return c.epoch }

// Overflow reports whether the context was allocated because its pool was
// empty at rent time.
func (c *Context) Overflow() bool { return c.overflow }
