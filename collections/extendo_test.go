package collections

import (
	"errors"
	"testing"
)

func TestExtendo_NativeNamesAreProtected(t *testing.T) {
	e := NewExtendo("name", "id")

	if !e.IsNative("name") || e.IsNative("color") {
		t.Errorf("unexpected native classification")
	}
	if err := e.Set("name", "x"); !errors.Is(err, ErrNativeProperty) {
		t.Errorf("expected native-property error, got %v", err)
	}
	if _, exists := e.Get("name"); exists {
		t.Errorf("native name resolved through the overlay")
	}
}

func TestExtendo_OverlayStoresDynamicProperties(t *testing.T) {
	e := NewExtendo("name")

	if err := e.Set("color", "red"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got, exists := e.Get("color"); !exists || got != "red" {
		t.Errorf("unexpected overlay value: %v, %t", got, exists)
	}
	if _, exists := e.Get("missing"); exists {
		t.Errorf("lookup of absent property succeeded")
	}
	if got, want := e.Size(), 1; got != want {
		t.Errorf("size does not match: %d != %d", got, want)
	}
}

func TestExtendo_RemoveDeletesOverlayValues(t *testing.T) {
	e := NewExtendo()
	_ = e.Set("a", 1)

	if !e.Remove("a") {
		t.Errorf("expected removal to succeed")
	}
	if e.Remove("a") {
		t.Errorf("second removal reported success")
	}
}

func TestExtendo_OverlayNamesAreSorted(t *testing.T) {
	e := NewExtendo()
	_ = e.Set("b", 2)
	_ = e.Set("a", 1)
	_ = e.Set("c", 3)

	names := e.OverlayNames()
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("unexpected number of names: %d", len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
