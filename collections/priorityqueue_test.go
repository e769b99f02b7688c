package collections

import (
	"math/rand"
	"testing"

	"github.com/Fantom-foundation/Coffer/common"
)

func TestPriorityQueue_ElementsAreSorted(t *testing.T) {
	const N = 100

	// Create a shuffled list of entries and add them to the queue.
	entries := make([]int, N)
	for i := 0; i < N; i++ {
		entries[i] = i
	}
	rand.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	queue := NewPriorityQueue[int](common.OrderedComparator[int]{})
	for _, e := range entries {
		queue.Add(e)
	}

	// Pop elements from the queue and check that they are sorted.
	for i := range entries {
		e, ok := queue.Peek()
		if !ok {
			t.Fatal("expected to peek an element")
		}
		if want, got := i, e; want != got {
			t.Errorf("expected to peek element %d, got %v", want, got)
		}

		e, ok = queue.Pop()
		if !ok {
			t.Fatal("expected to pop an element")
		}
		if want, got := i, e; want != got {
			t.Errorf("expected to pop element %d, got %v", want, got)
		}
	}

	if _, ok := queue.Peek(); ok {
		t.Fatal("expected to peek no more elements")
	}
	if _, ok := queue.Pop(); ok {
		t.Fatal("expected to pop no more elements")
	}
}

func TestPriorityQueue_ReverseOrder(t *testing.T) {
	queue := NewPriorityQueue[int](common.ReverseComparator[int]{Nested: common.OrderedComparator[int]{}})
	for _, e := range []int{2, 5, 1} {
		queue.Add(e)
	}

	for _, want := range []int{5, 2, 1} {
		got, ok := queue.Pop()
		if !ok || got != want {
			t.Errorf("unexpected element: %d != %d", got, want)
		}
	}
}

func TestPriorityQueue_SizeAndClear(t *testing.T) {
	queue := NewPriorityQueue[int](common.OrderedComparator[int]{})
	queue.Add(3)
	queue.Add(1)

	if got, want := queue.Size(), 2; got != want {
		t.Errorf("size does not match: %d != %d", got, want)
	}
	queue.Clear()
	if got := queue.Size(); got != 0 {
		t.Errorf("queue not empty after clear: %d", got)
	}
	if _, ok := queue.Pop(); ok {
		t.Errorf("cleared queue still pops elements")
	}
}

func TestPriorityQueue_DuplicatesAreRetained(t *testing.T) {
	queue := NewPriorityQueue[int](common.OrderedComparator[int]{})
	queue.Add(1)
	queue.Add(1)

	if got, want := queue.Size(), 2; got != want {
		t.Fatalf("size does not match: %d != %d", got, want)
	}
	a, _ := queue.Pop()
	b, _ := queue.Pop()
	if a != 1 || b != 1 {
		t.Errorf("unexpected elements: %d, %d", a, b)
	}
}
