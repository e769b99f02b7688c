package collections

import "sync"

// Registry provides at most one lazily created instance per key. The first
// GetOrInit call for a key runs the given constructor and stores its result;
// later calls for the same key return the stored instance without invoking
// their constructor. Instances live until the registry itself is dropped.
//
// A Registry is an explicit object meant to be passed by reference to its
// consumers rather than being reached through a package-level variable.
// It is safe for concurrent use.
type Registry[K comparable, V any] struct {
	lock      sync.Mutex
	instances map[K]V
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{instances: make(map[K]V)}
}

// GetOrInit returns the instance registered for the given key, creating it
// with the given constructor if the key is seen for the first time. The
// constructor runs while the registry lock is held and must not call back
// into the registry.
func (r *Registry[K, V]) GetOrInit(key K, init func() V) V {
	r.lock.Lock()
	defer r.lock.Unlock()
	if instance, exists := r.instances[key]; exists {
		return instance
	}
	instance := init()
	r.instances[key] = instance
	return instance
}

// Has reports whether an instance has been created for the given key.
func (r *Registry[K, V]) Has(key K) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	_, exists := r.instances[key]
	return exists
}

// Size returns the number of instances held by the registry.
func (r *Registry[K, V]) Size() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.instances)
}
