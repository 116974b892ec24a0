package queue

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/octonav/model"
	"github.com/hupe1980/octonav/testutil"
)

func drain(pq *PriorityQueue) []Item {
	var out []Item
	for {
		it, ok := pq.PopItem()
		if !ok {
			return out
		}
		out = append(out, it)
	}
}

func TestPriorityQueue_Order(t *testing.T) {
	pq := NewMin(4)
	pq.PushItem(Item{Node: 3, Priority: 2})
	pq.PushItem(Item{Node: 1, Priority: 5})
	pq.PushItem(Item{Node: 9, Priority: 1})
	pq.PushItem(Item{Node: 4, Priority: 3})

	top, ok := pq.TopItem()
	require.True(t, ok)
	assert.Equal(t, model.NodeID(9), top.Node)

	got := drain(pq)
	assert.Equal(t, []Item{{9, 1}, {3, 2}, {4, 3}, {1, 5}}, got)
}

func TestPriorityQueue_TieBreakByNode(t *testing.T) {
	pq := NewMin(0)
	for _, n := range []model.NodeID{7, 2, 5, 0, 3} {
		pq.PushItem(Item{Node: n, Priority: 1})
	}

	var nodes []model.NodeID
	for _, it := range drain(pq) {
		nodes = append(nodes, it.Node)
	}
	assert.Equal(t, []model.NodeID{0, 2, 3, 5, 7}, nodes)
}

func TestPriorityQueue_Empty(t *testing.T) {
	pq := NewMin(0)
	_, ok := pq.PopItem()
	assert.False(t, ok)
	_, ok = pq.TopItem()
	assert.False(t, ok)
	assert.Equal(t, Item{}, pq.Pop())
}

func TestPriorityQueue_ResetKeepsCapacity(t *testing.T) {
	pq := NewMin(2)
	for i := range 100 {
		pq.PushItem(Item{Node: model.NodeID(i), Priority: float32(i)})
	}
	c := pq.Cap()
	pq.Reset()
	assert.Equal(t, 0, pq.Len())
	assert.Equal(t, c, pq.Cap())
}

func TestPriorityQueue_MatchesContainerHeap(t *testing.T) {
	rng := testutil.NewRNG(3)
	fast := NewMin(0)
	ref := NewMin(0)

	for range 500 {
		it := Item{Node: model.NodeID(rng.Intn(50)), Priority: float32(rng.Intn(20))}
		fast.PushItem(it)
		heap.Push(ref, it)
	}

	for ref.Len() > 0 {
		want := heap.Pop(ref).(Item)
		got, ok := fast.PopItem()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, fast.Len())
}

func BenchmarkPushPop(b *testing.B) {
	pq := NewMin(1024)
	b.ReportAllocs()
	for b.Loop() {
		for i := range 1024 {
			pq.PushItem(Item{Node: model.NodeID(i), Priority: float32((i * 7919) % 1024)})
		}
		for pq.Len() > 0 {
			pq.PopItem()
		}
	}
}
