package collections

import (
	"unsafe"

	"github.com/Fantom-foundation/Coffer/common"
)

// PriorityQueue retains elements ordered by a comparator. Pop and Peek
// always address the element sorting first under the comparator's order.
// The queue is backed by a binary heap, making Add and Pop logarithmic
// and Peek constant time.
type PriorityQueue[T any] struct {
	comparator common.Comparator[T]
	data       []T
}

// NewPriorityQueue creates an empty queue ordered by the given comparator.
func NewPriorityQueue[T any](comparator common.Comparator[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{comparator: comparator}
}

// Add inserts the given element into the queue.
func (q *PriorityQueue[T]) Add(item T) {
	q.data = append(q.data, item)
	q.siftUp(len(q.data) - 1)
}

// Peek returns the element sorting first without removing it. The second
// return value is false when the queue is empty.
func (q *PriorityQueue[T]) Peek() (T, bool) {
	if len(q.data) == 0 {
		var empty T
		return empty, false
	}
	return q.data[0], true
}

// Pop removes and returns the element sorting first. The second return
// value is false when the queue is empty.
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if len(q.data) == 0 {
		var empty T
		return empty, false
	}
	res := q.data[0]
	last := len(q.data) - 1
	q.data[0] = q.data[last]
	var empty T
	q.data[last] = empty
	q.data = q.data[:last]
	q.siftDown(0)
	return res, true
}

// Size returns the number of elements in the queue.
func (q *PriorityQueue[T]) Size() int {
	return len(q.data)
}

// Clear removes all elements from the queue while retaining its buffer.
func (q *PriorityQueue[T]) Clear() {
	var empty T
	for i := range q.data {
		q.data[i] = empty
	}
	q.data = q.data[:0]
}

// GetMemoryFootprint provides the size of the queue in memory in bytes.
func (q *PriorityQueue[T]) GetMemoryFootprint() *common.MemoryFootprint {
	var item T
	return common.NewMemoryFootprint(unsafe.Sizeof(*q) + uintptr(cap(q.data))*unsafe.Sizeof(item))
}

func (q *PriorityQueue[T]) siftUp(pos int) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if q.comparator.Compare(&q.data[pos], &q.data[parent]) >= 0 {
			return
		}
		q.data[pos], q.data[parent] = q.data[parent], q.data[pos]
		pos = parent
	}
}

func (q *PriorityQueue[T]) siftDown(pos int) {
	for {
		smallest := pos
		left, right := 2*pos+1, 2*pos+2
		if left < len(q.data) && q.comparator.Compare(&q.data[left], &q.data[smallest]) < 0 {
			smallest = left
		}
		if right < len(q.data) && q.comparator.Compare(&q.data[right], &q.data[smallest]) < 0 {
			smallest = right
		}
		if smallest == pos {
			return
		}
		q.data[pos], q.data[smallest] = q.data[smallest], q.data[pos]
		pos = smallest
	}
}
