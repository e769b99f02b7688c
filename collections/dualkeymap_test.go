package collections

import "testing"

func TestDualKeyMap_LookupThroughBothKeys(t *testing.T) {
	m := NewDualKeyMap[int, string, float64]()
	m.Put(1, "one", 1.0)
	m.Put(2, "two", 2.0)

	if got, exists := m.GetByPrimary(1); !exists || got != 1.0 {
		t.Errorf("unexpected value by primary: %f, %t", got, exists)
	}
	if got, exists := m.GetBySecondary("two"); !exists || got != 2.0 {
		t.Errorf("unexpected value by secondary: %f, %t", got, exists)
	}
	if _, exists := m.GetByPrimary(3); exists {
		t.Errorf("lookup of absent primary key succeeded")
	}
	if got, exists := m.SecondaryOf(1); !exists || got != "one" {
		t.Errorf("unexpected secondary key: %q, %t", got, exists)
	}
	if got, exists := m.PrimaryOf("one"); !exists || got != 1 {
		t.Errorf("unexpected primary key: %d, %t", got, exists)
	}
}

func TestDualKeyMap_RemovalKeepsIndexesConsistent(t *testing.T) {
	m := NewDualKeyMap[int, string, float64]()
	m.Put(1, "one", 1.0)
	m.Put(2, "two", 2.0)

	if !m.RemoveByPrimary(1) {
		t.Fatalf("expected removal to succeed")
	}
	if _, exists := m.GetBySecondary("one"); exists {
		t.Errorf("secondary index still resolves removed entry")
	}
	if !m.RemoveBySecondary("two") {
		t.Fatalf("expected removal to succeed")
	}
	if _, exists := m.GetByPrimary(2); exists {
		t.Errorf("primary index still resolves removed entry")
	}
	if got := m.Size(); got != 0 {
		t.Errorf("map not empty: %d", got)
	}
	if m.RemoveByPrimary(1) || m.RemoveBySecondary("one") {
		t.Errorf("removal of absent keys reported success")
	}
}

func TestDualKeyMap_RebindingUnbindsPreviousPartners(t *testing.T) {
	m := NewDualKeyMap[int, string, float64]()
	m.Put(1, "one", 1.0)
	m.Put(2, "two", 2.0)

	// Rebinding primary 1 to secondary "two" displaces both old partners.
	m.Put(1, "two", 3.0)

	if got, want := m.Size(), 1; got != want {
		t.Fatalf("size does not match: %d != %d", got, want)
	}
	if _, exists := m.GetBySecondary("one"); exists {
		t.Errorf("stale secondary key still bound")
	}
	if _, exists := m.GetByPrimary(2); exists {
		t.Errorf("stale primary key still bound")
	}
	if got, _ := m.GetByPrimary(1); got != 3.0 {
		t.Errorf("unexpected value after rebinding: %f", got)
	}
}

func TestDualKeyMap_ForEachVisitsAllEntries(t *testing.T) {
	m := NewDualKeyMap[int, string, float64]()
	m.Put(1, "one", 1.0)
	m.Put(2, "two", 2.0)

	count := 0
	m.ForEach(func(p int, s string, v float64) {
		count++
		if got, _ := m.GetByPrimary(p); got != v {
			t.Errorf("inconsistent callback values: %f != %f", got, v)
		}
	})
	if count != 2 {
		t.Errorf("unexpected number of visited entries: %d", count)
	}
}

func TestDualKeyMap_Clear(t *testing.T) {
	m := NewDualKeyMap[int, string, float64]()
	m.Put(1, "one", 1.0)
	m.Clear()

	if got := m.Size(); got != 0 {
		t.Errorf("map not empty after clear: %d", got)
	}
	if _, exists := m.GetBySecondary("one"); exists {
		t.Errorf("secondary index not cleared")
	}
}
