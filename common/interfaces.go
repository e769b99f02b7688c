package common

import (
	"fmt"
)

type MemoryFootprintProvider interface {
	GetMemoryFootprint() *MemoryFootprint
}

// Hasher hashes a key to a bucket address.
type Hasher[K any] interface {
	Hash(*K) uint64
}

// Iterator is an interface for standard iterator
type Iterator[K any] interface {

	//HasNext returns true if there is still at least one more item in the underlying collection.
	HasNext() bool

	//Next returns a next element in the input collection.
	Next() K
}

// Map associates keys to values
type Map[K comparable, V any] interface {

	// Get returns a value associated with the key
	Get(key K) (val V, exists bool)

	// Put associates a new value to the key.
	Put(key K, val V)

	// Remove deletes a key from the map, returning the value
	Remove(key K) (exists bool)

	// ForEach iterates all stored key/value pairs
	ForEach(callback func(K, V))

	// Size returns number of elements
	Size() int

	// Clear removes all data from the map
	Clear()
}

// MapEntry wraps a map key-value pair
type MapEntry[K comparable, V any] struct {
	Key K
	Val V
}

func (e MapEntry[K, V]) String() string {
	return fmt.Sprintf("Entry: %v -> %v", e.Key, e.Val)
}
