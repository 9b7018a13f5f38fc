package fixedbuf

import (
	"fmt"

	"github.com/zeenix/mayheap"
	"github.com/zeenix/mayheap/lib/buffer"
)

// compile-time contract check
var _ buffer.Buffer[int] = (*Buffer[int])(nil)

// Buffer is the bounded engine. The backing array is allocated once in New and
// the element count can never exceed its length; the capacity reported by Cap
// is constant for the buffer's lifetime.
type Buffer[T any] struct {
	items []T
}

// New returns an empty buffer with a hard ceiling of capacity elements,
// performing the engine's only allocation. A negative capacity panics; a zero
// capacity is valid and rejects every append.
func New[T any](capacity int) Buffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("mayheap: negative capacity %d", capacity))
	}
	return Buffer[T]{items: make([]T, 0, capacity)}
}

// ----------------------------------------------------------------------------
// Mutation
// ----------------------------------------------------------------------------

// Append stores one element, or returns mayheap.ErrBufferOverflow if the
// buffer is already at capacity. On error nothing changes.
func (b *Buffer[T]) Append(item T) error {
	if len(b.items) == cap(b.items) {
		return mayheap.ErrBufferOverflow
	}
	b.items = append(b.items, item)
	return nil
}

// AppendSlice stores all of items, or none: the ceiling is checked before any
// element is copied, and on overflow the buffer is exactly as it was.
func (b *Buffer[T]) AppendSlice(items []T) error {
	if len(b.items)+len(items) > cap(b.items) {
		return mayheap.ErrBufferOverflow
	}
	b.items = append(b.items, items...)
	return nil
}

// Truncate keeps the first n elements and zeroes the vacated slots so values
// they referenced become collectable. The backing array is retained.
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

// Clear releases every element, keeping the backing array.
func (b *Buffer[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}

// ----------------------------------------------------------------------------
// Inspection
// ----------------------------------------------------------------------------

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap returns the construction capacity. It never changes.
func (b *Buffer[T]) Cap() int { return cap(b.items) }

// Full reports whether the buffer is at its ceiling, meaning the next Append
// fails.
func (b *Buffer[T]) Full() bool { return len(b.items) == cap(b.items) }

// Slice returns the live element window. The bounded engine never moves its
// storage, so the window stays attached for the buffer's lifetime.
func (b *Buffer[T]) Slice() []T { return b.items }
