// Package pqueue provides a generic min-priority queue on top of
// container/heap.
//
// Two usage patterns are supported, matching how the heap is consumed by
// the shortest-path and spanning-tree packages:
//
//   - lazy insert: push a fresh entry whenever a better priority is found
//     and skip stale entries after popping ("lazy decrease-key");
//   - handle-based: keep the *Item returned by Push and call Update to
//     re-prioritize it in place (true decrease-key via heap.Fix).
//
// Pop always yields an item with minimal priority. No ordering is promised
// between items of equal priority.
//
// Complexity: Push, Pop, Update and Remove are O(log n); Peek and Len are
// O(1).
package pqueue

import (
	"cmp"
	"container/heap"
	"errors"
)

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue indicates Pop or Peek was called on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrStaleHandle indicates Update or Remove was called with a handle
	// whose item already left the queue.
	ErrStaleHandle = errors.New("pqueue: item no longer in queue")
)

// Item is a queue entry handle. It stays valid until the item is popped or
// removed, after which Update/Remove report ErrStaleHandle.
type Item[T any, P cmp.Ordered] struct {
	value    T
	priority P
	index    int // position in the heap; -1 once dequeued
}

// Value returns the payload carried by the item.
func (it *Item[T, P]) Value() T { return it.value }

// Priority returns the item's current priority.
func (it *Item[T, P]) Priority() P { return it.priority }

// PQ is a min-priority queue. The zero value is not usable; construct with
// New. PQ is not safe for concurrent use.
type PQ[T any, P cmp.Ordered] struct {
	h itemHeap[T, P]
}

// New returns an empty min-priority queue.
func New[T any, P cmp.Ordered]() *PQ[T, P] {
	return &PQ[T, P]{h: make(itemHeap[T, P], 0)}
}

// Len returns the number of queued items.
func (q *PQ[T, P]) Len() int { return len(q.h) }

// Push enqueues value with the given priority and returns its handle.
func (q *PQ[T, P]) Push(value T, priority P) *Item[T, P] {
	it := &Item[T, P]{value: value, priority: priority}
	heap.Push(&q.h, it)

	return it
}

// Pop removes and returns an item with minimal priority.
// Returns ErrEmptyQueue when the queue is empty.
func (q *PQ[T, P]) Pop() (T, P, error) {
	if len(q.h) == 0 {
		var zv T
		var zp P

		return zv, zp, ErrEmptyQueue
	}
	it := heap.Pop(&q.h).(*Item[T, P])

	return it.value, it.priority, nil
}

// Peek returns an item with minimal priority without removing it.
// Returns ErrEmptyQueue when the queue is empty.
func (q *PQ[T, P]) Peek() (T, P, error) {
	if len(q.h) == 0 {
		var zv T
		var zp P

		return zv, zp, ErrEmptyQueue
	}

	return q.h[0].value, q.h[0].priority, nil
}

// Update changes the priority of a queued item and restores heap order.
// Works for both decreases and increases. Returns ErrStaleHandle if the
// item already left the queue.
func (q *PQ[T, P]) Update(it *Item[T, P], priority P) error {
	if it == nil || it.index < 0 {
		return ErrStaleHandle
	}
	it.priority = priority
	heap.Fix(&q.h, it.index)

	return nil
}

// Remove deletes a queued item regardless of its position.
// Returns ErrStaleHandle if the item already left the queue.
func (q *PQ[T, P]) Remove(it *Item[T, P]) error {
	if it == nil || it.index < 0 {
		return ErrStaleHandle
	}
	heap.Remove(&q.h, it.index)

	return nil
}

// itemHeap implements heap.Interface over *Item, ordered by ascending
// priority. Item indices are maintained on every move so handles stay
// valid for Update/Remove.
type itemHeap[T any, P cmp.Ordered] []*Item[T, P]

func (h itemHeap[T, P]) Len() int { return len(h) }

func (h itemHeap[T, P]) Less(i, j int) bool { return h[i].priority < h[j].priority }

func (h itemHeap[T, P]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap[T, P]) Push(x any) {
	it := x.(*Item[T, P])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap[T, P]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]

	return it
}
