package collections

import (
	"sync"
	"unsafe"

	"github.com/Fantom-foundation/Coffer/common"
	"golang.org/x/exp/maps"
)

// ObservableMap is a key/value map that reports every mutation to its
// subscribed listeners. Like ObservableList, all operations serialize on one
// per-instance lock, and a mutation and its notification happen atomically
// within that lock.
type ObservableMap[K comparable, V comparable] struct {
	lock       sync.Mutex
	data       map[K]V
	listeners  []MapListener[K, V]
	lastChange MapChange[K, V]
	hasChange  bool
}

// NewObservableMap creates an empty observable map.
func NewObservableMap[K comparable, V comparable]() *ObservableMap[K, V] {
	return &ObservableMap[K, V]{data: make(map[K]V)}
}

// NewObservableMapFrom creates an observable map pre-populated with a copy
// of the given entries. No notification is emitted for the seed content.
func NewObservableMapFrom[K comparable, V comparable](entries map[K]V) *ObservableMap[K, V] {
	data := make(map[K]V, len(entries))
	for key, value := range entries {
		data[key] = value
	}
	return &ObservableMap[K, V]{data: data}
}

// Subscribe registers a listener to be invoked after every mutation.
func (m *ObservableMap[K, V]) Subscribe(listener MapListener[K, V]) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.listeners = append(m.listeners, listener)
}

// Unsubscribe removes a previously registered listener and reports whether
// it was found. Listeners are matched by interface identity.
func (m *ObservableMap[K, V]) Unsubscribe(listener MapListener[K, V]) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	for i, cur := range m.listeners {
		if cur == listener {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Add inserts a new key/value association and notifies listeners of the
// addition. Adding a key that is already present fails with ErrDuplicateKey
// and leaves the map unmodified.
func (m *ObservableMap[K, V]) Add(key K, value V) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, exists := m.data[key]; exists {
		return ErrDuplicateKey
	}
	m.data[key] = value
	m.notify(MapChange[K, V]{Kind: Added, NewEntry: common.MapEntry[K, V]{Key: key, Val: value}})
	return nil
}

// Set associates the given value with the given key. If the key is already
// present, listeners are notified of a replacement carrying the previous
// entry; otherwise Set behaves like Add.
func (m *ObservableMap[K, V]) Set(key K, value V) {
	m.lock.Lock()
	defer m.lock.Unlock()
	newEntry := common.MapEntry[K, V]{Key: key, Val: value}
	if old, exists := m.data[key]; exists {
		m.data[key] = value
		m.notify(MapChange[K, V]{
			Kind:     Replaced,
			NewEntry: newEntry,
			OldEntry: common.MapEntry[K, V]{Key: key, Val: old},
		})
		return
	}
	m.data[key] = value
	m.notify(MapChange[K, V]{Kind: Added, NewEntry: newEntry})
}

// Remove deletes the association of the given key, returning the removed
// value and whether the key was present. Listeners are notified only when
// a removal actually happened.
func (m *ObservableMap[K, V]) Remove(key K) (V, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	old, exists := m.data[key]
	if !exists {
		var empty V
		return empty, false
	}
	delete(m.data, key)
	m.notify(MapChange[K, V]{Kind: Removed, OldEntry: common.MapEntry[K, V]{Key: key, Val: old}})
	return old, true
}

// RemoveMatching deletes the association of the given key only if its
// current value equals the given value, reporting whether a removal
// happened.
func (m *ObservableMap[K, V]) RemoveMatching(key K, value V) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	old, exists := m.data[key]
	if !exists || old != value {
		return false
	}
	delete(m.data, key)
	m.notify(MapChange[K, V]{Kind: Removed, OldEntry: common.MapEntry[K, V]{Key: key, Val: old}})
	return true
}

// Replace removes the association of oldKey, if present, and associates
// newValue with newKey, notifying listeners of the replacement. It reports
// whether oldKey was present; the new association is established either way.
func (m *ObservableMap[K, V]) Replace(oldKey K, oldValue V, newKey K, newValue V) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	_, existed := m.data[oldKey]
	if existed {
		delete(m.data, oldKey)
	}
	m.data[newKey] = newValue
	m.notify(MapChange[K, V]{
		Kind:     Replaced,
		NewEntry: common.MapEntry[K, V]{Key: newKey, Val: newValue},
		OldEntry: common.MapEntry[K, V]{Key: oldKey, Val: oldValue},
	})
	return existed
}

// Clear removes all entries and notifies listeners with a reset change,
// also when the map was already empty.
func (m *ObservableMap[K, V]) Clear() {
	m.lock.Lock()
	defer m.lock.Unlock()
	maps.Clear(m.data)
	m.notify(MapChange[K, V]{Kind: Reset})
}

// Get returns the value associated with the given key, failing with
// ErrKeyNotFound when the key is absent.
func (m *ObservableMap[K, V]) Get(key K) (V, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	value, exists := m.data[key]
	if !exists {
		var empty V
		return empty, ErrKeyNotFound
	}
	return value, nil
}

// TryGet returns the value associated with the given key and whether the
// key is present.
func (m *ObservableMap[K, V]) TryGet(key K) (V, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	value, exists := m.data[key]
	return value, exists
}

// ContainsKey reports whether the given key is present in the map.
func (m *ObservableMap[K, V]) ContainsKey(key K) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	_, exists := m.data[key]
	return exists
}

// ContainsEntry reports whether the given key is present and associated
// with the given value.
func (m *ObservableMap[K, V]) ContainsEntry(key K, value V) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	cur, exists := m.data[key]
	return exists && cur == value
}

// Size returns the number of entries in the map.
func (m *ObservableMap[K, V]) Size() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.data)
}

// Keys returns a snapshot of the keys of the map, in no particular order.
func (m *ObservableMap[K, V]) Keys() []K {
	m.lock.Lock()
	defer m.lock.Unlock()
	return maps.Keys(m.data)
}

// Values returns a snapshot of the values of the map, in no particular order.
func (m *ObservableMap[K, V]) Values() []V {
	m.lock.Lock()
	defer m.lock.Unlock()
	return maps.Values(m.data)
}

// Entries returns a snapshot of the entries of the map, in no particular order.
func (m *ObservableMap[K, V]) Entries() []common.MapEntry[K, V] {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := make([]common.MapEntry[K, V], 0, len(m.data))
	for key, value := range m.data {
		res = append(res, common.MapEntry[K, V]{Key: key, Val: value})
	}
	return res
}

// ForEach calls the callback for each entry while holding the map lock.
// The callback must not call back into the map.
func (m *ObservableMap[K, V]) ForEach(callback func(K, V)) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for key, value := range m.data {
		callback(key, value)
	}
}

// LastChange returns the change record of the most recently completed
// mutation. The second return value is false until the first mutation.
func (m *ObservableMap[K, V]) LastChange() (MapChange[K, V], bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.lastChange, m.hasChange
}

// GetMemoryFootprint provides the size of the map in memory in bytes.
func (m *ObservableMap[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	m.lock.Lock()
	defer m.lock.Unlock()
	selfSize := unsafe.Sizeof(*m)
	entrySize := unsafe.Sizeof(common.MapEntry[K, V]{})
	return common.NewMemoryFootprint(selfSize + uintptr(len(m.data))*entrySize)
}

// notify records the given change and invokes all listeners. The caller
// must hold the map lock.
func (m *ObservableMap[K, V]) notify(change MapChange[K, V]) {
	m.lastChange = change
	m.hasChange = true
	for _, listener := range m.listeners {
		listener.OnMapChange(change)
	}
}
