package collections

import (
	"sync"
	"unsafe"

	"github.com/Fantom-foundation/Coffer/common"
)

// ObservableList is a list that reports every mutation to its subscribed
// listeners. All operations, readers included, serialize on one per-instance
// lock; a mutation and the notification it triggers happen atomically within
// that lock, so listeners observe changes in the exact order they were
// applied.
//
// Earlier revisions of this design left Insert, RemoveAt, and IndexOf outside
// the lock and the notification path. This implementation deliberately guards
// and reports every mutator uniformly.
type ObservableList[T comparable] struct {
	lock       sync.Mutex
	items      *FastList[T]
	listeners  []ListListener[T]
	lastChange ListChange[T]
	hasChange  bool
}

// NewObservableList creates an empty observable list.
func NewObservableList[T comparable]() *ObservableList[T] {
	return &ObservableList[T]{items: NewFastList[T]()}
}

// NewObservableListFrom creates an observable list pre-populated with a copy
// of the given elements. No notification is emitted for the seed content.
func NewObservableListFrom[T comparable](items []T) *ObservableList[T] {
	return &ObservableList[T]{items: NewFastListFrom(items)}
}

// Subscribe registers a listener to be invoked after every mutation.
func (l *ObservableList[T]) Subscribe(listener ListListener[T]) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.listeners = append(l.listeners, listener)
}

// Unsubscribe removes a previously registered listener and reports whether
// it was found. Listeners are matched by interface identity.
func (l *ObservableList[T]) Unsubscribe(listener ListListener[T]) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	for i, cur := range l.listeners {
		if cur == listener {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Add appends the given element and notifies listeners of the addition.
func (l *ObservableList[T]) Add(item T) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.items.Add(item)
	l.notify(ListChange[T]{Kind: Added, NewItem: item})
}

// Insert places the given element at the given position and notifies
// listeners of the addition.
func (l *ObservableList[T]) Insert(index int, item T) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if err := l.items.Insert(index, item); err != nil {
		return err
	}
	l.notify(ListChange[T]{Kind: Added, NewItem: item})
	return nil
}

// Set replaces the element at the given position and notifies listeners of
// the replacement, reporting both the new and the previous element.
func (l *ObservableList[T]) Set(index int, item T) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	old, err := l.items.Get(index)
	if err != nil {
		return err
	}
	// The index was just validated, Set cannot fail.
	_ = l.items.Set(index, item)
	l.notify(ListChange[T]{Kind: Replaced, NewItem: item, OldItem: old})
	return nil
}

// Remove deletes the first occurrence of the given element and reports
// whether an element was removed. Listeners are notified only when a
// removal actually happened.
func (l *ObservableList[T]) Remove(item T) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	if !l.items.Remove(item) {
		return false
	}
	l.notify(ListChange[T]{Kind: Removed, OldItem: item})
	return true
}

// RemoveAt deletes the element at the given position, returning the removed
// element and notifying listeners of the removal.
func (l *ObservableList[T]) RemoveAt(index int) (T, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	old, err := l.items.Get(index)
	if err != nil {
		var empty T
		return empty, err
	}
	_ = l.items.RemoveAt(index)
	l.notify(ListChange[T]{Kind: Removed, OldItem: old})
	return old, nil
}

// Replace removes the first occurrence of oldItem and appends newItem at the
// end of the list; the position of the replaced element is not preserved.
// It reports whether oldItem was found; nothing changes when it was not.
func (l *ObservableList[T]) Replace(oldItem, newItem T) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	if !l.items.Remove(oldItem) {
		return false
	}
	l.items.Add(newItem)
	l.notify(ListChange[T]{Kind: Replaced, NewItem: newItem, OldItem: oldItem})
	return true
}

// Clear removes all elements and notifies listeners with a reset change,
// also when the list was already empty.
func (l *ObservableList[T]) Clear() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.items.Clear(false)
	l.notify(ListChange[T]{Kind: Reset})
}

// Get returns the element at the given position.
func (l *ObservableList[T]) Get(index int) (T, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.items.Get(index)
}

// IndexOf returns the position of the first occurrence of the given element,
// or -1 if the element is not present.
func (l *ObservableList[T]) IndexOf(item T) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.items.IndexOf(item)
}

// Contains reports whether the given element is present in the list.
func (l *ObservableList[T]) Contains(item T) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.items.IndexOf(item) >= 0
}

// Size returns the number of elements in the list.
func (l *ObservableList[T]) Size() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.items.Size()
}

// CopyTo copies the list content into the given slice, starting at its
// beginning, and returns the number of elements copied.
func (l *ObservableList[T]) CopyTo(target []T) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return copy(target, l.items.data[:l.items.size])
}

// ToArray returns a snapshot of the list content as a plain slice.
func (l *ObservableList[T]) ToArray() []T {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.items.ToArray()
}

// ForEach calls the callback for each element in insertion order while
// holding the list lock. The callback must not call back into the list.
func (l *ObservableList[T]) ForEach(callback func(T)) {
	l.lock.Lock()
	defer l.lock.Unlock()
	for i := 0; i < l.items.size; i++ {
		callback(l.items.data[i])
	}
}

// LastChange returns the change record of the most recently completed
// mutation. The second return value is false until the first mutation.
func (l *ObservableList[T]) LastChange() (ListChange[T], bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.lastChange, l.hasChange
}

// GetMemoryFootprint provides the size of the list in memory in bytes.
func (l *ObservableList[T]) GetMemoryFootprint() *common.MemoryFootprint {
	l.lock.Lock()
	defer l.lock.Unlock()
	res := common.NewMemoryFootprint(unsafe.Sizeof(*l))
	res.AddChild("items", l.items.GetMemoryFootprint())
	return res
}

// notify records the given change and invokes all listeners. The caller
// must hold the list lock.
func (l *ObservableList[T]) notify(change ListChange[T]) {
	l.lastChange = change
	l.hasChange = true
	for _, listener := range l.listeners {
		listener.OnListChange(change)
	}
}
