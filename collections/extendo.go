package collections

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Extendo is a typed key/value overlay for objects with a fixed set of
// native properties. Property names registered as native at construction
// time belong to the owning object and cannot be shadowed; all other names
// resolve against the overlay map. The overlay replaces reflective dynamic
// property access with explicit registration.
type Extendo struct {
	native  map[string]struct{}
	overlay map[string]any
}

// NewExtendo creates an overlay with the given set of native property names.
func NewExtendo(nativeNames ...string) *Extendo {
	native := make(map[string]struct{}, len(nativeNames))
	for _, name := range nativeNames {
		native[name] = struct{}{}
	}
	return &Extendo{
		native:  native,
		overlay: make(map[string]any),
	}
}

// IsNative reports whether the given name belongs to the owning object's
// fixed property set.
func (e *Extendo) IsNative(name string) bool {
	_, exists := e.native[name]
	return exists
}

// Get returns the overlay value stored under the given name. Native names
// are never resolved through the overlay.
func (e *Extendo) Get(name string) (any, bool) {
	value, exists := e.overlay[name]
	return value, exists
}

// Set stores a value in the overlay under the given name. Setting a native
// name fails with ErrNativeProperty.
func (e *Extendo) Set(name string, value any) error {
	if e.IsNative(name) {
		return ErrNativeProperty
	}
	e.overlay[name] = value
	return nil
}

// Remove deletes the overlay value stored under the given name and reports
// whether one existed.
func (e *Extendo) Remove(name string) bool {
	if _, exists := e.overlay[name]; !exists {
		return false
	}
	delete(e.overlay, name)
	return true
}

// OverlayNames returns the sorted names currently present in the overlay.
func (e *Extendo) OverlayNames() []string {
	names := maps.Keys(e.overlay)
	slices.Sort(names)
	return names
}

// Size returns the number of overlay values.
func (e *Extendo) Size() int {
	return len(e.overlay)
}
