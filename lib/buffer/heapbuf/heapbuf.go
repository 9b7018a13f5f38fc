package heapbuf

import (
	"fmt"

	"github.com/zeenix/mayheap/lib/buffer"
)

// compile-time contract check
var _ buffer.Buffer[int] = (*Buffer[int])(nil)

// Buffer is the growable engine: a length/capacity discipline over a heap
// slice. The zero value is usable as an empty buffer with no reservation,
// though the containers always construct one through New.
type Buffer[T any] struct {
	items []T
}

// New returns an empty buffer reserving room for capacity elements. The
// reservation is a starting point, not a limit. A negative capacity panics.
func New[T any](capacity int) Buffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("mayheap: negative capacity %d", capacity))
	}
	return Buffer[T]{items: make([]T, 0, capacity)}
}

// ----------------------------------------------------------------------------
// Mutation
// ----------------------------------------------------------------------------

// Append stores one element, growing the allocation if necessary. It never
// returns an error; the error in the signature belongs to the shared engine
// contract.
func (b *Buffer[T]) Append(item T) error {
	b.items = append(b.items, item)
	return nil
}

// AppendSlice stores all of items in order. A single append keeps the
// operation trivially atomic.
func (b *Buffer[T]) AppendSlice(items []T) error {
	b.items = append(b.items, items...)
	return nil
}

// Truncate keeps the first n elements. Vacated slots are zeroed so values they
// referenced become collectable; the allocation itself is retained.
func (b *Buffer[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("mayheap: negative truncation length %d", n))
	}
	if n >= len(b.items) {
		return
	}
	clear(b.items[n:])
	b.items = b.items[:n]
}

// Clear releases every element, keeping the allocation.
func (b *Buffer[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}

// ----------------------------------------------------------------------------
// Inspection
// ----------------------------------------------------------------------------

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap returns the current allocation size, which grows over the buffer's life.
func (b *Buffer[T]) Cap() int { return cap(b.items) }

// Full reports whether the next Append will reallocate.
func (b *Buffer[T]) Full() bool { return len(b.items) == cap(b.items) }

// Slice returns the live element window. Growth triggered by a later append
// may move storage and detach previously returned windows.
func (b *Buffer[T]) Slice() []T { return b.items }
