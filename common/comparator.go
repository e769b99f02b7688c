package common

import "golang.org/x/exp/constraints"

// Comparator is a strategy for ordering values of type T. Compare returns
// a negative number when *a sorts before *b, zero when both are equal,
// and a positive number when *a sorts after *b.
type Comparator[T any] interface {
	Compare(a, b *T) int
}

// ComparatorFunc adapts an ordinary compare function to the Comparator interface.
type ComparatorFunc[T any] func(a, b *T) int

func (f ComparatorFunc[T]) Compare(a, b *T) int {
	return f(a, b)
}

// OrderedComparator orders values of any type supporting the < operator.
type OrderedComparator[T constraints.Ordered] struct{}

func (c OrderedComparator[T]) Compare(a, b *T) int {
	if *a < *b {
		return -1
	}
	if *a > *b {
		return 1
	}
	return 0
}

// ReverseComparator inverts the order defined by the nested comparator.
type ReverseComparator[T any] struct {
	Nested Comparator[T]
}

func (c ReverseComparator[T]) Compare(a, b *T) int {
	return c.Nested.Compare(b, a)
}
