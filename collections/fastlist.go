package collections

import (
	"unsafe"

	"github.com/Fantom-foundation/Coffer/common"
	"golang.org/x/exp/slices"
)

// defaultListCapacity is the capacity an empty list grows to on its first insertion.
const defaultListCapacity = 4

// FastList is a contiguous, index-addressable, growable sequence of elements.
// Appends run in amortized constant time, arbitrary inserts and removals shift
// the elements behind the affected position. The backing buffer grows by at
// least doubling and never shrinks unless TrimExcess is called.
//
// A FastList is not synchronized. Mutating it concurrently with any other
// operation, including iteration, is unsupported; iterations running during a
// mutation may skip or repeat elements but never corrupt memory.
type FastList[T comparable] struct {
	data []T // backing buffer, its length is the list capacity
	size int // number of live elements in data[0:size]
}

// NewFastList creates an empty list with the default capacity.
func NewFastList[T comparable]() *FastList[T] {
	return NewFastListWithCapacity[T](defaultListCapacity)
}

// NewFastListWithCapacity creates an empty list with the given initial capacity.
func NewFastListWithCapacity[T comparable](capacity int) *FastList[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &FastList[T]{data: make([]T, capacity)}
}

// NewFastListFrom creates a list holding a copy of the given elements.
func NewFastListFrom[T comparable](items []T) *FastList[T] {
	data := make([]T, len(items))
	copy(data, items)
	return &FastList[T]{data: data, size: len(items)}
}

// Size returns the number of elements in the list.
func (l *FastList[T]) Size() int {
	return l.size
}

// Capacity returns the size of the backing buffer.
func (l *FastList[T]) Capacity() int {
	return len(l.data)
}

// Get returns the element at the given position.
func (l *FastList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var empty T
		return empty, ErrIndexOutOfRange
	}
	return l.data[index], nil
}

// Set replaces the element at the given position.
func (l *FastList[T]) Set(index int, item T) error {
	if index < 0 || index >= l.size {
		return ErrIndexOutOfRange
	}
	l.data[index] = item
	return nil
}

// Add appends the given element at the end of the list, growing the
// backing buffer if needed.
func (l *FastList[T]) Add(item T) {
	if l.size == len(l.data) {
		l.grow(l.size + 1)
	}
	l.data[l.size] = item
	l.size++
}

// Insert places the given element at the given position, shifting all
// subsequent elements one position to the right. The index may be equal
// to the current size, in which case Insert behaves like Add.
func (l *FastList[T]) Insert(index int, item T) error {
	if index < 0 || index > l.size {
		return ErrIndexOutOfRange
	}
	if l.size == len(l.data) {
		l.grow(l.size + 1)
	}
	copy(l.data[index+1:l.size+1], l.data[index:l.size])
	l.data[index] = item
	l.size++
	return nil
}

// RemoveAt removes the element at the given position, shifting all
// subsequent elements one position to the left. The vacated trailing
// slot is cleared to avoid retaining references.
func (l *FastList[T]) RemoveAt(index int) error {
	if index < 0 || index >= l.size {
		return ErrIndexOutOfRange
	}
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	var empty T
	l.data[l.size-1] = empty
	l.size--
	return nil
}

// Remove deletes the first occurrence of the given element and reports
// whether an element was removed.
func (l *FastList[T]) Remove(item T) bool {
	index := l.IndexOf(item)
	if index < 0 {
		return false
	}
	// The index was just validated, RemoveAt cannot fail.
	_ = l.RemoveAt(index)
	return true
}

// IndexOf returns the position of the first occurrence of the given
// element, or -1 if the element is not present.
func (l *FastList[T]) IndexOf(item T) int {
	return l.IndexOfRange(item, 0, l.size)
}

// IndexOfRange returns the position of the first occurrence of the given
// element within the range of count elements starting at index, or -1 if the
// element is not present there or the range does not lie within the list.
func (l *FastList[T]) IndexOfRange(item T, index, count int) int {
	if index < 0 || count < 0 || index+count > l.size {
		return -1
	}
	for i := index; i < index+count; i++ {
		if l.data[i] == item {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the position of the last occurrence of the given
// element, or -1 if the element is not present.
func (l *FastList[T]) LastIndexOf(item T) int {
	return l.LastIndexOfRange(item, 0, l.size)
}

// LastIndexOfRange returns the position of the last occurrence of the given
// element within the range of count elements starting at index, or -1 if the
// element is not present there or the range does not lie within the list.
func (l *FastList[T]) LastIndexOfRange(item T, index, count int) int {
	if index < 0 || count < 0 || index+count > l.size {
		return -1
	}
	for i := index + count - 1; i >= index; i-- {
		if l.data[i] == item {
			return i
		}
	}
	return -1
}

// BinarySearch locates the given element in the list using the given
// comparator. The populated range must be sorted under the same ordering;
// the result on an unsorted list is undefined. If the element is found, its
// position is returned. Otherwise, the bitwise complement of the position
// where the element would have to be inserted is returned.
func (l *FastList[T]) BinarySearch(item T, comparator common.Comparator[T]) int {
	pos, found := slices.BinarySearchFunc(l.data[:l.size], item, func(a, b T) int {
		return comparator.Compare(&a, &b)
	})
	if found {
		return pos
	}
	return ^pos
}

// Sort orders the elements of the list in place using the given comparator.
// The sort is not stable: equal elements may be reordered.
func (l *FastList[T]) Sort(comparator common.Comparator[T]) {
	slices.SortFunc(l.data[:l.size], func(a, b T) int {
		return comparator.Compare(&a, &b)
	})
}

// SortRange orders the range of count elements starting at index in place
// using the given comparator. Like Sort, the sort is not stable.
func (l *FastList[T]) SortRange(index, count int, comparator common.Comparator[T]) error {
	if index < 0 || count < 0 || index+count > l.size {
		return ErrIndexOutOfRange
	}
	slices.SortFunc(l.data[index:index+count], func(a, b T) int {
		return comparator.Compare(&a, &b)
	})
	return nil
}

// Find returns the first element satisfying the given predicate.
func (l *FastList[T]) Find(predicate func(T) bool) (T, bool) {
	if index := l.FindIndex(predicate); index >= 0 {
		return l.data[index], true
	}
	var empty T
	return empty, false
}

// FindIndex returns the position of the first element satisfying the given
// predicate, or -1 if no element qualifies.
func (l *FastList[T]) FindIndex(predicate func(T) bool) int {
	return l.FindIndexRange(0, l.size, predicate)
}

// FindIndexRange returns the position of the first element satisfying the
// given predicate within the range of count elements starting at index,
// or -1 if no element there qualifies or the range is invalid.
func (l *FastList[T]) FindIndexRange(index, count int, predicate func(T) bool) int {
	if index < 0 || count < 0 || index+count > l.size {
		return -1
	}
	for i := index; i < index+count; i++ {
		if predicate(l.data[i]) {
			return i
		}
	}
	return -1
}

// FindLast returns the last element satisfying the given predicate.
func (l *FastList[T]) FindLast(predicate func(T) bool) (T, bool) {
	if index := l.FindLastIndex(predicate); index >= 0 {
		return l.data[index], true
	}
	var empty T
	return empty, false
}

// FindLastIndex returns the position of the last element satisfying the
// given predicate, or -1 if no element qualifies.
func (l *FastList[T]) FindLastIndex(predicate func(T) bool) int {
	return l.FindLastIndexRange(0, l.size, predicate)
}

// FindLastIndexRange returns the position of the last element satisfying the
// given predicate within the range of count elements starting at index,
// or -1 if no element there qualifies or the range is invalid.
func (l *FastList[T]) FindLastIndexRange(index, count int, predicate func(T) bool) int {
	if index < 0 || count < 0 || index+count > l.size {
		return -1
	}
	for i := index + count - 1; i >= index; i-- {
		if predicate(l.data[i]) {
			return i
		}
	}
	return -1
}

// FindAll returns a new list holding all elements satisfying the given
// predicate, in their original order.
func (l *FastList[T]) FindAll(predicate func(T) bool) *FastList[T] {
	res := NewFastList[T]()
	for i := 0; i < l.size; i++ {
		if predicate(l.data[i]) {
			res.Add(l.data[i])
		}
	}
	return res
}

// GetRange returns a new independent list holding a copy of the range of
// count elements starting at index.
func (l *FastList[T]) GetRange(index, count int) (*FastList[T], error) {
	if index < 0 || count < 0 || index+count > l.size {
		return nil, ErrIndexOutOfRange
	}
	return NewFastListFrom(l.data[index : index+count]), nil
}

// EnsureCapacity grows the backing buffer to hold at least min elements.
// The buffer is never shrunk; calling EnsureCapacity with a value not
// exceeding the current capacity has no effect.
func (l *FastList[T]) EnsureCapacity(min int) {
	if min > len(l.data) {
		l.grow(min)
	}
}

// Clear resets the list to the empty state while retaining the backing
// buffer. When fast is set, only the logical length is reset and vacated
// slots keep their previous content until overwritten; otherwise all
// vacated slots are cleared to release references.
func (l *FastList[T]) Clear(fast bool) {
	if !fast {
		var empty T
		for i := 0; i < l.size; i++ {
			l.data[i] = empty
		}
	}
	l.size = 0
}

// TrimExcess reallocates the backing buffer to exactly the current size.
func (l *FastList[T]) TrimExcess() {
	if len(l.data) == l.size {
		return
	}
	data := make([]T, l.size)
	copy(data, l.data[:l.size])
	l.data = data
}

// ToArray returns a copy of the list content as a plain slice.
func (l *FastList[T]) ToArray() []T {
	res := make([]T, l.size)
	copy(res, l.data[:l.size])
	return res
}

// GetInternalArray exposes the backing buffer of the list without copying.
// Only the first Size() elements are live. The returned slice must be
// treated as read-only and must not be retained across mutations of the
// list; a growth reallocation invalidates it.
func (l *FastList[T]) GetInternalArray() []T {
	return l.data
}

// GetMemoryFootprint provides the size of the list in memory in bytes.
func (l *FastList[T]) GetMemoryFootprint() *common.MemoryFootprint {
	selfSize := unsafe.Sizeof(*l)
	var item T
	return common.NewMemoryFootprint(selfSize + uintptr(len(l.data))*unsafe.Sizeof(item))
}

// grow reallocates the backing buffer so it can hold at least required
// elements. The new capacity at least doubles the previous one to keep
// the total copying cost of a series of insertions linear.
func (l *FastList[T]) grow(required int) {
	capacity := 2 * len(l.data)
	if capacity < required {
		capacity = required
	}
	if capacity < defaultListCapacity {
		capacity = defaultListCapacity
	}
	data := make([]T, capacity)
	copy(data, l.data[:l.size])
	l.data = data
}
