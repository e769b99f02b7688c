package collections

import (
	"context"

	"github.com/Fantom-foundation/Coffer/common"
)

// CtxIterator walks a finite sequence while honoring context cancellation.
// It yields the same elements in the same order as the plain iterator of the
// underlying collection; no operation ever blocks.
type CtxIterator[T any] interface {

	// Next returns the next element of the sequence. It returns false once
	// the sequence is exhausted, and ErrCanceled instead of an element once
	// the given context has been canceled.
	Next(ctx context.Context) (value T, exists bool, err error)
}

// Iterator returns an iterator over the elements of the list in insertion
// order. A fresh iterator always starts at position zero. The list must not
// be mutated while the iterator is in use.
func (l *FastList[T]) Iterator() common.Iterator[T] {
	return &fastListIterator[T]{list: l}
}

// CtxIterator returns a cancellation-aware iterator over the elements of the
// list, yielding the same elements as Iterator.
func (l *FastList[T]) CtxIterator() CtxIterator[T] {
	return &fastListCtxIterator[T]{list: l}
}

type fastListIterator[T comparable] struct {
	list *FastList[T]
	pos  int
}

func (it *fastListIterator[T]) HasNext() bool {
	return it.pos < it.list.size
}

func (it *fastListIterator[T]) Next() T {
	item := it.list.data[it.pos]
	it.pos++
	return item
}

type fastListCtxIterator[T comparable] struct {
	list *FastList[T]
	pos  int
}

func (it *fastListCtxIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var empty T
	if isCancelled(ctx) {
		return empty, false, ErrCanceled
	}
	if it.pos >= it.list.size {
		return empty, false, nil
	}
	item := it.list.data[it.pos]
	it.pos++
	return item, true, nil
}

// isCancelled returns true if the given context's CancelFunc has been called.
// Otherwise, returns false.
func isCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
