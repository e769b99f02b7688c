package collections

import (
	"unsafe"

	"github.com/Fantom-foundation/Coffer/common"
)

// Pool is an in-memory collection of values, each associated to a unique,
// pool-controlled index serving as an identifier. New allocates an index,
// Release frees it for reuse by later allocations. The life cycle of
// indexes is managed by the client code: accessing a released index is
// rejected, releasing the same index twice is as well.
type Pool[T any] struct {
	values []T
	inUse  []bool
	free   []int
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// New allocates an index for a new value to be maintained in the pool.
// Indexes released earlier are reassigned before the index space grows.
func (p *Pool[T]) New() int {
	if n := len(p.free); n > 0 {
		index := p.free[n-1]
		p.free = p.free[:n-1]
		p.inUse[index] = true
		return index
	}
	var empty T
	p.values = append(p.values, empty)
	p.inUse = append(p.inUse, true)
	return len(p.values) - 1
}

// Get retrieves the value associated to the given index.
func (p *Pool[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(p.values) || !p.inUse[index] {
		var empty T
		return empty, ErrIndexOutOfRange
	}
	return p.values[index], nil
}

// Set updates the value associated to the given index.
func (p *Pool[T]) Set(index int, value T) error {
	if index < 0 || index >= len(p.values) || !p.inUse[index] {
		return ErrIndexOutOfRange
	}
	p.values[index] = value
	return nil
}

// Release frees the value associated to the given index. The index may be
// reassigned by future New calls.
func (p *Pool[T]) Release(index int) error {
	if index < 0 || index >= len(p.values) || !p.inUse[index] {
		return ErrIndexOutOfRange
	}
	var empty T
	p.values[index] = empty
	p.inUse[index] = false
	p.free = append(p.free, index)
	return nil
}

// Size returns the number of values currently allocated in the pool.
func (p *Pool[T]) Size() int {
	return len(p.values) - len(p.free)
}

// GetMemoryFootprint provides the size of the pool in memory in bytes.
func (p *Pool[T]) GetMemoryFootprint() *common.MemoryFootprint {
	var value T
	size := unsafe.Sizeof(*p)
	size += uintptr(cap(p.values)) * unsafe.Sizeof(value)
	size += uintptr(cap(p.inUse)) * unsafe.Sizeof(true)
	size += uintptr(cap(p.free)) * unsafe.Sizeof(int(0))
	return common.NewMemoryFootprint(size)
}
