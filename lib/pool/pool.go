package pool

import (
	"fmt"
	"sync/atomic"
)

// Pool hands out slots for values of T. Create one with New; the zero value
// has no storage bound and is not usable.
type Pool[T any] struct {
	slots storage[T]
}

// New returns a pool with the given capacity: advisory under the growable
// engine, the exact pre-allocated slot count under the bounded one. A negative
// capacity panics.
func New[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("mayheap: negative capacity %d", capacity))
	}
	return &Pool[T]{slots: newStorage[T](capacity)}
}

// Alloc places value into a free slot and returns its Box. A drained pool
// under the bounded engine fails with mayheap.ErrBufferOverflow; under the
// growable engine Alloc never fails.
func (p *Pool[T]) Alloc(value T) (*Box[T], error) {
	slot, err := p.slots.get()
	if err != nil {
		return nil, err
	}
	*slot = value
	return &Box[T]{pool: p, slot: slot}, nil
}

// Box is an allocated slot. It comes only from Pool.Alloc and keeps its slot
// until Free.
type Box[T any] struct {
	pool  *Pool[T]
	slot  *T
	freed atomic.Bool
}

// Value returns the slot. The pointer is stable for the Box's lifetime;
// reading it after Free is a caller bug, since the slot may already hold
// another Box's value.
func (b *Box[T]) Value() *T {
	return b.slot
}

// Free releases the held value and returns the slot to the pool (bounded) or
// to the collector (growable). Free is idempotent and safe to call from any
// goroutine; only the first call does anything.
func (b *Box[T]) Free() {
	if !b.freed.CompareAndSwap(false, true) {
		return
	}
	var zero T
	*b.slot = zero
	b.pool.slots.put(b.slot)
}
