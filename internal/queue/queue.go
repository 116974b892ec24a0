// Package queue provides the open set used by the path search.
package queue

import (
	"container/heap"

	"github.com/hupe1980/octonav/model"
)

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// Item is one open set entry. Items are stored by value.
type Item struct {
	Node     model.NodeID
	Priority float32
}

// before orders items by ascending priority, then ascending node id.
func (a Item) before(b Item) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Node < b.Node
}

// PriorityQueue is a binary min-heap of Items.
//
// Equal priorities pop in ascending node order, which makes searches over
// the same graph deterministic. A node may be pushed more than once; callers
// skip stale entries on pop.
type PriorityQueue struct {
	items []Item
}

// NewMin initializes an empty queue with the given capacity.
func NewMin(capacity int) *PriorityQueue {
	return &PriorityQueue{items: make([]Item, 0, capacity)}
}

// TopItem returns the minimum item without removing it.
func (pq *PriorityQueue) TopItem() (Item, bool) {
	if len(pq.items) == 0 {
		return Item{}, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) PushItem(item Item) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PopItem removes and returns the minimum item.
func (pq *PriorityQueue) PopItem() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.items[i].before(pq.items[p]) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.items[r].before(pq.items[l]) {
			best = r
		}
		if !pq.items[best].before(pq.items[i]) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}

// Len returns the number of queued items, stale entries included.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Cap returns the capacity of the backing slice.
func (pq *PriorityQueue) Cap() int { return cap(pq.items) }

// Less implements heap.Interface. The heap.Interface methods let
// container/heap drive the same storage as PushItem and PopItem.
func (pq *PriorityQueue) Less(i, j int) bool { return pq.items[i].before(pq.items[j]) }

// Swap implements heap.Interface.
func (pq *PriorityQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push implements heap.Interface.
func (pq *PriorityQueue) Push(x any) { pq.items = append(pq.items, x.(Item)) }

// Pop implements heap.Interface.
func (pq *PriorityQueue) Pop() any {
	n := len(pq.items)
	if n == 0 {
		return Item{}
	}
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]
	return item
}

// Reset empties the queue and keeps its storage for reuse.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}
