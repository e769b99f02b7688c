package collections

import (
	"unsafe"

	"github.com/Fantom-foundation/Coffer/common"
)

// Stack is a last-in-first-out sequence of elements backed by a FastList.
type Stack[T comparable] struct {
	items *FastList[T]
}

// NewStack creates an empty stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{items: NewFastList[T]()}
}

// Push places the given element on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items.Add(item)
}

// Pop removes and returns the element on top of the stack. The second
// return value is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	top := s.items.Size() - 1
	if top < 0 {
		var empty T
		return empty, false
	}
	item, _ := s.items.Get(top)
	_ = s.items.RemoveAt(top)
	return item, true
}

// Peek returns the element on top of the stack without removing it. The
// second return value is false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	top := s.items.Size() - 1
	if top < 0 {
		var empty T
		return empty, false
	}
	item, _ := s.items.Get(top)
	return item, true
}

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int {
	return s.items.Size()
}

// Clear removes all elements from the stack.
func (s *Stack[T]) Clear() {
	s.items.Clear(false)
}

// GetMemoryFootprint provides the size of the stack in memory in bytes.
func (s *Stack[T]) GetMemoryFootprint() *common.MemoryFootprint {
	res := common.NewMemoryFootprint(unsafe.Sizeof(*s))
	res.AddChild("items", s.items.GetMemoryFootprint())
	return res
}

// Queue is a first-in-first-out sequence of elements backed by a FastList.
// Dequeue shifts the remaining elements and is linear in the queue length.
type Queue[T comparable] struct {
	items *FastList[T]
}

// NewQueue creates an empty queue.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{items: NewFastList[T]()}
}

// Enqueue appends the given element at the end of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.items.Add(item)
}

// Dequeue removes and returns the element at the front of the queue. The
// second return value is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.items.Size() == 0 {
		var empty T
		return empty, false
	}
	item, _ := q.items.Get(0)
	_ = q.items.RemoveAt(0)
	return item, true
}

// Peek returns the element at the front of the queue without removing it.
// The second return value is false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if q.items.Size() == 0 {
		var empty T
		return empty, false
	}
	item, _ := q.items.Get(0)
	return item, true
}

// Size returns the number of elements in the queue.
func (q *Queue[T]) Size() int {
	return q.items.Size()
}

// Clear removes all elements from the queue.
func (q *Queue[T]) Clear() {
	q.items.Clear(false)
}

// GetMemoryFootprint provides the size of the queue in memory in bytes.
func (q *Queue[T]) GetMemoryFootprint() *common.MemoryFootprint {
	res := common.NewMemoryFootprint(unsafe.Sizeof(*q))
	res.AddChild("items", q.items.GetMemoryFootprint())
	return res
}
