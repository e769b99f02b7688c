package collections

import (
	"unsafe"

	"github.com/Fantom-foundation/Coffer/common"
)

// Mapping assigns each registered value a dense numeric index and a unique
// name, and resolves lookups through either. Indexes are assigned in
// registration order, starting at zero, and never reused; values cannot be
// unregistered individually.
type Mapping[V any] struct {
	values []V
	names  []string
	index  map[string]int
}

// NewMapping creates an empty mapping.
func NewMapping[V any]() *Mapping[V] {
	return &Mapping[V]{index: make(map[string]int)}
}

// Register adds the given value under the given name and returns the index
// assigned to it. Registering an already present name fails with
// ErrDuplicateKey and leaves the mapping unmodified.
func (m *Mapping[V]) Register(name string, value V) (int, error) {
	if _, exists := m.index[name]; exists {
		return -1, ErrDuplicateKey
	}
	index := len(m.values)
	m.values = append(m.values, value)
	m.names = append(m.names, name)
	m.index[name] = index
	return index, nil
}

// ByIndex returns the value registered under the given index.
func (m *Mapping[V]) ByIndex(index int) (V, error) {
	if index < 0 || index >= len(m.values) {
		var empty V
		return empty, ErrIndexOutOfRange
	}
	return m.values[index], nil
}

// ByName returns the value registered under the given name.
func (m *Mapping[V]) ByName(name string) (V, bool) {
	index, exists := m.index[name]
	if !exists {
		var empty V
		return empty, false
	}
	return m.values[index], true
}

// IndexOf returns the index assigned to the given name.
func (m *Mapping[V]) IndexOf(name string) (int, bool) {
	index, exists := m.index[name]
	return index, exists
}

// NameOf returns the name registered under the given index.
func (m *Mapping[V]) NameOf(index int) (string, error) {
	if index < 0 || index >= len(m.names) {
		return "", ErrIndexOutOfRange
	}
	return m.names[index], nil
}

// ForEach calls the callback for each registration in index order.
func (m *Mapping[V]) ForEach(callback func(index int, name string, value V)) {
	for i, value := range m.values {
		callback(i, m.names[i], value)
	}
}

// Size returns the number of registered values.
func (m *Mapping[V]) Size() int {
	return len(m.values)
}

// GetMemoryFootprint provides the size of the mapping in memory in bytes.
func (m *Mapping[V]) GetMemoryFootprint() *common.MemoryFootprint {
	var value V
	size := unsafe.Sizeof(*m)
	size += uintptr(cap(m.values)) * unsafe.Sizeof(value)
	size += uintptr(cap(m.names)) * unsafe.Sizeof("")
	size += uintptr(len(m.index)) * (unsafe.Sizeof("") + unsafe.Sizeof(int(0)))
	return common.NewMemoryFootprint(size)
}
