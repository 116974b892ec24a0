package searcher

import "sync/atomic"

// Pool is a bounded set of contexts sized to one graph.
//
// Rent never blocks. When no idle context is available a new one is
// allocated; Return keeps at most Capacity contexts and drops the rest.
// All methods are safe for concurrent use.
type Pool struct {
	nodeCount int
	idle      chan *Context

	rents     atomic.Uint64
	overflows atomic.Uint64
	returns   atomic.Uint64
	drops     atomic.Uint64
}

// PoolStats is a snapshot of pool counters.
type PoolStats struct {
	Capacity  int
	Idle      int
	Rents     uint64
	Overflows uint64
	Returns   uint64
	Drops     uint64
}

// NewPool pre-allocates capacity contexts for a graph of nodeCount nodes.
func NewPool(nodeCount, capacity int) *Pool {
	capacity = max(capacity, 0)
	p := &Pool{
		nodeCount: nodeCount,
		idle:      make(chan *Context, capacity),
	}
	for range capacity {
		p.idle <- NewContext(nodeCount)
	}
	return p
}

// Rent hands out an idle context or allocates an overflow one.
func (p *Pool) Rent() *Context {
	p.rents.Add(1)
	select {
	case c := <-p.idle:
		c.overflow = false
		return c
	default:
		p.overflows.Add(1)
		c := NewContext(p.nodeCount)
		c.overflow = true
		return c
	}
}

// Return hands c back. Contexts for a different node count and contexts
// beyond capacity are dropped.
func (p *Pool) Return(c *Context) {
	if c == nil {
		return
	}
	p.returns.Add(1)
	if c.Size() != p.nodeCount {
		p.drops.Add(1)
		return
	}
	select {
	case p.idle <- c:
	default:
		p.drops.Add(1)
	}
}

// NodeCount returns the slot count of pooled contexts.
func (p *Pool) NodeCount() int { return p.nodeCount }

// Capacity returns the maximum number of idle contexts.
func (p *Pool) Capacity() int { return cap(p.idle) }

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Capacity:  cap(p.idle),
		Idle:      len(p.idle),
		Rents:     p.rents.Load(),
		Overflows: p.overflows.Load(),
		Returns:   p.returns.Load(),
		Drops:     p.drops.Load(),
	}
}
