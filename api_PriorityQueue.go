package forGKlibGo

import (
	"cmp"
	"fmt"
)

// PQueue is an indexed binary heap over the node ids 0..maxNodes-1. The node
// whose key is greatest under the queue's order is on top.
type PQueue[K any] struct {
	heap    []KV[int, K]
	locator []int
	order   Order[K]
}

type (
	IPQueue = PQueue[int]
	RPQueue = PQueue[float64]
)

func NewPQueue[K cmp.Ordered](maxNodes int) *PQueue[K] {
	return NewPQueueFunc[K](maxNodes, Ascending[K])
}

// NewPQueueFunc returns a queue ordered by order. A min-queue is
// NewPQueueFunc(n, Reverse(Ascending[K])).
func NewPQueueFunc[K any](maxNodes int, order Order[K]) *PQueue[K] {
	locator := make([]int, maxNodes)
	for i := range locator {
		locator[i] = -1
	}
	return &PQueue[K]{
		heap:    make([]KV[int, K], 0, maxNodes),
		locator: locator,
		order:   order,
	}
}

func (q *PQueue[K]) gt(a, b K) bool {
	return q.order(a, b) > 0
}

func (q *PQueue[K]) Reset() {
	for _, e := range q.heap {
		q.locator[e.Key] = -1
	}
	q.heap = q.heap[:0]
}

func (q *PQueue[K]) Length() int {
	return len(q.heap)
}

func (q *PQueue[K]) Contains(node int) bool {
	return node >= 0 && node < len(q.locator) && q.locator[node] >= 0
}

func (q *PQueue[K]) Insert(node int, key K) error {
	if node < 0 || node >= len(q.locator) {
		return fmt.Errorf("%w: node %v out of range [0, %v)", ErrInvalidArgument, node, len(q.locator))
	}
	if q.locator[node] >= 0 {
		return fmt.Errorf("%w: node %v already queued", ErrInvalidArgument, node)
	}
	q.heap = append(q.heap, KV[int, K]{Key: node, Val: key})
	q.siftUp(len(q.heap)-1, node, key)
	return nil
}

func (q *PQueue[K]) Delete(node int) error {
	if !q.Contains(node) {
		return fmt.Errorf("%w: node %v", ErrNotFound, node)
	}
	i := q.locator[node]
	q.locator[node] = -1
	last := len(q.heap) - 1
	moved := q.heap[last]
	q.heap = q.heap[:last]
	if i == last {
		return nil
	}
	if q.gt(moved.Val, q.heap[i].Val) {
		q.siftUp(i, moved.Key, moved.Val)
	} else {
		q.siftDown(i, moved.Key, moved.Val)
	}
	return nil
}

func (q *PQueue[K]) Update(node int, key K) error {
	if !q.Contains(node) {
		return fmt.Errorf("%w: node %v", ErrNotFound, node)
	}
	i := q.locator[node]
	if q.gt(key, q.heap[i].Val) {
		q.siftUp(i, node, key)
	} else {
		q.siftDown(i, node, key)
	}
	return nil
}

// GetTop removes the top node and returns it.
func (q *PQueue[K]) GetTop() (node int, ok bool) {
	if len(q.heap) == 0 {
		return -1, false
	}
	node = q.heap[0].Key
	q.locator[node] = -1
	last := len(q.heap) - 1
	moved := q.heap[last]
	q.heap = q.heap[:last]
	if last > 0 {
		q.siftDown(0, moved.Key, moved.Val)
	}
	return node, true
}

func (q *PQueue[K]) SeeTopVal() (node int, ok bool) {
	if len(q.heap) == 0 {
		return -1, false
	}
	return q.heap[0].Key, true
}

func (q *PQueue[K]) SeeTopKey() (key K, ok bool) {
	if len(q.heap) == 0 {
		return key, false
	}
	return q.heap[0].Val, true
}

func (q *PQueue[K]) SeeKey(node int) (key K, ok bool) {
	if !q.Contains(node) {
		return key, false
	}
	return q.heap[q.locator[node]].Val, true
}

func (q *PQueue[K]) siftUp(i, node int, key K) {
	for i > 0 {
		j := (i - 1) / 2
		if !q.gt(key, q.heap[j].Val) {
			break
		}
		q.heap[i] = q.heap[j]
		q.locator[q.heap[i].Key] = i
		i = j
	}
	q.heap[i] = KV[int, K]{Key: node, Val: key}
	q.locator[node] = i
}

func (q *PQueue[K]) siftDown(i, node int, key K) {
	n := len(q.heap)
	for {
		j := 2*i + 1
		if j >= n {
			break
		}
		if j+1 < n && q.gt(q.heap[j+1].Val, q.heap[j].Val) {
			j++
		}
		if !q.gt(q.heap[j].Val, key) {
			break
		}
		q.heap[i] = q.heap[j]
		q.locator[q.heap[i].Key] = i
		i = j
	}
	q.heap[i] = KV[int, K]{Key: node, Val: key}
	q.locator[node] = i
}

// CheckHeap verifies the heap property and the locator array.
func (q *PQueue[K]) CheckHeap() bool {
	for i, e := range q.heap {
		if q.locator[e.Key] != i {
			return false
		}
		if i > 0 && q.gt(e.Val, q.heap[(i-1)/2].Val) {
			return false
		}
	}
	nodes := 0
	for _, l := range q.locator {
		if l >= 0 {
			nodes++
		}
	}
	return nodes == len(q.heap)
}
