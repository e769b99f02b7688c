package collections

import (
	"unsafe"

	"github.com/Fantom-foundation/Coffer/common"
)

// initialHashMapBuckets is the bucket count of an empty map, a power of two.
const initialHashMapBuckets = 16

// HashMap is a hash-based map associating keys to values using a caller
// supplied hash strategy for bucket addressing. Entries are stored in one
// contiguous slice and chained per bucket through indexes, minimizing
// allocations; the bucket table doubles whenever the entry count reaches
// the bucket count.
type HashMap[K comparable, V any] struct {
	hasher  common.Hasher[K]
	buckets []int32
	entries []hashMapEntry[K, V]
}

type hashMapEntry[K comparable, V any] struct {
	key   K
	value V
	next  int32 // index of the next entry in the same bucket, -1 at the end
}

// NewHashMap creates an empty map addressing buckets with the given hasher.
func NewHashMap[K comparable, V any](hasher common.Hasher[K]) *HashMap[K, V] {
	res := &HashMap[K, V]{
		hasher:  hasher,
		buckets: make([]int32, initialHashMapBuckets),
	}
	res.Clear()
	return res
}

// Get returns a value stored in the map or the type's default value.
// The second return value is set to true if the value was present.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	cur := m.buckets[m.bucketOf(key)]
	for cur >= 0 {
		if m.entries[cur].key == key {
			return m.entries[cur].value, true
		}
		cur = m.entries[cur].next
	}
	var empty V
	return empty, false
}

// Put associates a key to a value. If the key is already present, the
// value is updated.
func (m *HashMap[K, V]) Put(key K, value V) {
	bucket := m.bucketOf(key)
	cur := m.buckets[bucket]
	for cur >= 0 {
		if m.entries[cur].key == key {
			m.entries[cur].value = value
			return
		}
		cur = m.entries[cur].next
	}
	if len(m.entries) >= len(m.buckets) {
		m.rehash(2 * len(m.buckets))
		bucket = m.bucketOf(key)
	}
	m.entries = append(m.entries, hashMapEntry[K, V]{key: key, value: value, next: m.buckets[bucket]})
	m.buckets[bucket] = int32(len(m.entries) - 1)
}

// Remove deletes the key from the map and returns whether an element
// was removed.
func (m *HashMap[K, V]) Remove(key K) bool {
	slot := &m.buckets[m.bucketOf(key)]
	for *slot >= 0 {
		cur := *slot
		if m.entries[cur].key != key {
			slot = &m.entries[cur].next
			continue
		}
		*slot = m.entries[cur].next

		// Keep the entry slice dense by moving the last entry into the
		// vacated slot and redirecting the index referencing it.
		last := int32(len(m.entries) - 1)
		if cur != last {
			m.entries[cur] = m.entries[last]
			ref := &m.buckets[m.bucketOf(m.entries[cur].key)]
			for *ref != last {
				ref = &m.entries[*ref].next
			}
			*ref = cur
		}
		m.entries = m.entries[:last]
		return true
	}
	return false
}

// ForEach iterates all stored key/value pairs in no particular order.
func (m *HashMap[K, V]) ForEach(callback func(K, V)) {
	for i := 0; i < len(m.entries); i++ {
		callback(m.entries[i].key, m.entries[i].value)
	}
}

// Size returns the number of entries in the map.
func (m *HashMap[K, V]) Size() int {
	return len(m.entries)
}

// Clear removes all data from the map while retaining the bucket table.
func (m *HashMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = -1
	}
	m.entries = m.entries[:0]
}

// GetMemoryFootprint provides the size of the map in memory in bytes.
func (m *HashMap[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var entry hashMapEntry[K, V]
	size := unsafe.Sizeof(*m)
	size += uintptr(cap(m.buckets)) * unsafe.Sizeof(int32(0))
	size += uintptr(cap(m.entries)) * unsafe.Sizeof(entry)
	return common.NewMemoryFootprint(size)
}

// bucketOf maps the given key to its bucket. The bucket count is kept a
// power of two so the hash can be masked instead of reduced modulo.
func (m *HashMap[K, V]) bucketOf(key K) uint64 {
	return m.hasher.Hash(&key) & uint64(len(m.buckets)-1)
}

// rehash grows the bucket table to the given count and redistributes all
// entry chains.
func (m *HashMap[K, V]) rehash(buckets int) {
	m.buckets = make([]int32, buckets)
	for i := range m.buckets {
		m.buckets[i] = -1
	}
	for i := range m.entries {
		bucket := m.bucketOf(m.entries[i].key)
		m.entries[i].next = m.buckets[bucket]
		m.buckets[bucket] = int32(i)
	}
}
