package collections

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Fantom-foundation/Coffer/common"
)

func TestHashMapIsMap(t *testing.T) {
	var instance HashMap[string, uint32]
	var _ common.Map[string, uint32] = &instance
}

func TestHashMap_GetPut(t *testing.T) {
	h := NewHashMap[string, uint32](common.StringHasher{})

	if _, exists := h.Get("A"); exists {
		t.Errorf("value is present in an empty map")
	}

	h.Put("A", 10)
	h.Put("B", 20)
	h.Put("C", 30)

	if val, exists := h.Get("A"); !exists || val != 10 {
		t.Errorf("value is not correct: %d, %t", val, exists)
	}
	if val, exists := h.Get("B"); !exists || val != 20 {
		t.Errorf("value is not correct: %d, %t", val, exists)
	}
	if val, exists := h.Get("C"); !exists || val != 30 {
		t.Errorf("value is not correct: %d, %t", val, exists)
	}

	// replace
	h.Put("A", 33)
	if val, exists := h.Get("A"); !exists || val != 33 {
		t.Errorf("value is not correct: %d, %t", val, exists)
	}

	if size := h.Size(); size != 3 {
		t.Errorf("size does not fit: %d", size)
	}
}

func TestHashMap_Remove(t *testing.T) {
	h := NewHashMap[string, uint32](common.StringHasher{})

	if h.Remove("A") {
		t.Errorf("removal from an empty map reported success")
	}

	h.Put("A", 10)
	h.Put("B", 20)

	if !h.Remove("A") {
		t.Errorf("expected removal to succeed")
	}
	if _, exists := h.Get("A"); exists {
		t.Errorf("removed key still present")
	}
	if val, exists := h.Get("B"); !exists || val != 20 {
		t.Errorf("removal corrupted another entry: %d, %t", val, exists)
	}
	if size := h.Size(); size != 1 {
		t.Errorf("size does not fit: %d", size)
	}
}

// collidingHasher maps every key to the same bucket, forcing all entries
// into one chain.
type collidingHasher struct{}

func (collidingHasher) Hash(*string) uint64 {
	return 0
}

func TestHashMap_CollidingKeysAreChained(t *testing.T) {
	h := NewHashMap[string, int](collidingHasher{})

	const N = 10
	for i := 0; i < N; i++ {
		h.Put(fmt.Sprintf("key-%d", i), i)
	}
	for i := 0; i < N; i++ {
		if val, exists := h.Get(fmt.Sprintf("key-%d", i)); !exists || val != i {
			t.Errorf("value is not correct: %d, %t", val, exists)
		}
	}

	// Removing from the middle of the chain keeps the rest reachable.
	if !h.Remove("key-5") {
		t.Fatalf("expected removal to succeed")
	}
	for i := 0; i < N; i++ {
		val, exists := h.Get(fmt.Sprintf("key-%d", i))
		if i == 5 {
			if exists {
				t.Errorf("removed key still present")
			}
			continue
		}
		if !exists || val != i {
			t.Errorf("value is not correct after removal: %d, %t", val, exists)
		}
	}
}

func TestHashMap_GrowsPastInitialBucketCount(t *testing.T) {
	h := NewHashMap[string, int](common.StringHasher{})

	const N = 10 * initialHashMapBuckets
	for i := 0; i < N; i++ {
		h.Put(fmt.Sprintf("key-%d", i), i)
	}
	if size := h.Size(); size != N {
		t.Fatalf("size does not fit: %d != %d", size, N)
	}
	for i := 0; i < N; i++ {
		if val, exists := h.Get(fmt.Sprintf("key-%d", i)); !exists || val != i {
			t.Errorf("value lost during growth: %d, %t", val, exists)
		}
	}
}

func TestHashMap_ForEachVisitsAllEntries(t *testing.T) {
	h := NewHashMap[string, int](common.StringHasher{})
	h.Put("A", 1)
	h.Put("B", 2)

	visited := make(map[string]int)
	h.ForEach(func(key string, value int) {
		visited[key] = value
	})
	if len(visited) != 2 || visited["A"] != 1 || visited["B"] != 2 {
		t.Errorf("unexpected visited entries: %v", visited)
	}
}

func TestHashMap_Clear(t *testing.T) {
	h := NewHashMap[string, int](common.StringHasher{})
	h.Put("A", 1)

	h.Clear()
	if size := h.Size(); size != 0 {
		t.Errorf("map not empty after clear: %d", size)
	}
	if _, exists := h.Get("A"); exists {
		t.Errorf("cleared key still present")
	}

	// The map stays usable after a clear.
	h.Put("B", 2)
	if val, exists := h.Get("B"); !exists || val != 2 {
		t.Errorf("value is not correct: %d, %t", val, exists)
	}
}

func TestHashMap_MatchesReferenceMap(t *testing.T) {
	h := NewHashMap[string, int](common.StringHasher{})
	reference := make(map[string]int)

	r := rand.New(rand.NewSource(45))
	for i := 0; i < 10_000; i++ {
		key := fmt.Sprintf("key-%d", r.Intn(100))
		switch r.Intn(3) {
		case 0:
			h.Put(key, i)
			reference[key] = i
		case 1:
			wantRemoved := false
			if _, exists := reference[key]; exists {
				wantRemoved = true
				delete(reference, key)
			}
			if got := h.Remove(key); got != wantRemoved {
				t.Fatalf("unexpected removal result for %q: %t", key, got)
			}
		case 2:
			want, wantExists := reference[key]
			if got, exists := h.Get(key); exists != wantExists || got != want {
				t.Fatalf("unexpected lookup result for %q: %d, %t", key, got, exists)
			}
		}
		if h.Size() != len(reference) {
			t.Fatalf("size does not fit: %d != %d", h.Size(), len(reference))
		}
	}
}

func TestHashMap_ReportsMemoryFootprint(t *testing.T) {
	h := NewHashMap[string, int](common.StringHasher{})
	var _ common.MemoryFootprintProvider = h
	if h.GetMemoryFootprint().Total() == 0 {
		t.Errorf("footprint is empty")
	}
}

func BenchmarkHashMap_Put(b *testing.B) {
	h := NewHashMap[string, int](common.StringHasher{})
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Put(keys[i%len(keys)], i)
	}
}
