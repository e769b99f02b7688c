package collections

import (
	"unsafe"

	"github.com/Fantom-foundation/Coffer/common"
)

// DualKeyMap associates every value with two keys at once, a primary and a
// secondary one, and resolves lookups and removals through either of them.
// Both indexes are kept consistent: removing a value through one key also
// unbinds the other, and re-binding a key to a new partner unbinds the
// partner's previous association first.
type DualKeyMap[P comparable, S comparable, V any] struct {
	byPrimary   map[P]dualKeyEntry[S, V]
	bySecondary map[S]P
}

type dualKeyEntry[S comparable, V any] struct {
	secondary S
	value     V
}

// NewDualKeyMap creates an empty map.
func NewDualKeyMap[P comparable, S comparable, V any]() *DualKeyMap[P, S, V] {
	return &DualKeyMap[P, S, V]{
		byPrimary:   make(map[P]dualKeyEntry[S, V]),
		bySecondary: make(map[S]P),
	}
}

// Put associates the given value with both keys, replacing any association
// either key was previously part of.
func (m *DualKeyMap[P, S, V]) Put(primary P, secondary S, value V) {
	if old, exists := m.byPrimary[primary]; exists {
		delete(m.bySecondary, old.secondary)
	}
	if oldPrimary, exists := m.bySecondary[secondary]; exists {
		delete(m.byPrimary, oldPrimary)
	}
	m.byPrimary[primary] = dualKeyEntry[S, V]{secondary: secondary, value: value}
	m.bySecondary[secondary] = primary
}

// GetByPrimary returns the value associated with the given primary key.
func (m *DualKeyMap[P, S, V]) GetByPrimary(primary P) (V, bool) {
	entry, exists := m.byPrimary[primary]
	return entry.value, exists
}

// GetBySecondary returns the value associated with the given secondary key.
func (m *DualKeyMap[P, S, V]) GetBySecondary(secondary S) (V, bool) {
	primary, exists := m.bySecondary[secondary]
	if !exists {
		var empty V
		return empty, false
	}
	return m.byPrimary[primary].value, true
}

// SecondaryOf returns the secondary key bound to the given primary key.
func (m *DualKeyMap[P, S, V]) SecondaryOf(primary P) (S, bool) {
	entry, exists := m.byPrimary[primary]
	return entry.secondary, exists
}

// PrimaryOf returns the primary key bound to the given secondary key.
func (m *DualKeyMap[P, S, V]) PrimaryOf(secondary S) (P, bool) {
	primary, exists := m.bySecondary[secondary]
	return primary, exists
}

// RemoveByPrimary deletes the association the given primary key is part of
// and reports whether one existed.
func (m *DualKeyMap[P, S, V]) RemoveByPrimary(primary P) bool {
	entry, exists := m.byPrimary[primary]
	if !exists {
		return false
	}
	delete(m.byPrimary, primary)
	delete(m.bySecondary, entry.secondary)
	return true
}

// RemoveBySecondary deletes the association the given secondary key is part
// of and reports whether one existed.
func (m *DualKeyMap[P, S, V]) RemoveBySecondary(secondary S) bool {
	primary, exists := m.bySecondary[secondary]
	if !exists {
		return false
	}
	delete(m.bySecondary, secondary)
	delete(m.byPrimary, primary)
	return true
}

// ForEach calls the callback for each association in the map.
func (m *DualKeyMap[P, S, V]) ForEach(callback func(P, S, V)) {
	for primary, entry := range m.byPrimary {
		callback(primary, entry.secondary, entry.value)
	}
}

// Size returns the number of associations in the map.
func (m *DualKeyMap[P, S, V]) Size() int {
	return len(m.byPrimary)
}

// Clear removes all associations from the map.
func (m *DualKeyMap[P, S, V]) Clear() {
	clear(m.byPrimary)
	clear(m.bySecondary)
}

// GetMemoryFootprint provides the size of the map in memory in bytes.
func (m *DualKeyMap[P, S, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var primary P
	var entry dualKeyEntry[S, V]
	size := unsafe.Sizeof(*m)
	size += uintptr(len(m.byPrimary)) * (unsafe.Sizeof(primary) + unsafe.Sizeof(entry))
	size += uintptr(len(m.bySecondary)) * (unsafe.Sizeof(entry.secondary) + unsafe.Sizeof(primary))
	return common.NewMemoryFootprint(size)
}
