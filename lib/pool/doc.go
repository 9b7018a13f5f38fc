// Package pool provides Pool, a slot allocator with one API over the module's
// two storage engines. A default build hands slots to the garbage collector
// and allocates on demand; building with -tags heapless pre-allocates a fixed
// set of slots at construction and never allocates again.
//
// Key Features:
//   - Construction-time capacity: advisory under the growable engine, the
//     exact and permanent slot count under the bounded one
//   - Box handles that keep a slot alive until freed, with idempotent Free
//   - A drained bounded pool fails with mayheap.ErrBufferOverflow instead of
//     allocating
//   - Freed values are released immediately, not when the slot is reused
//
// Thread Safety:
//
//	Alloc and Free are safe for concurrent use across goroutines; the bounded
//	freelist is a lock-free MPMC queue. A Box itself is a single-owner value:
//	one goroutine uses and frees it, and reading a Box's value after Free is
//	a caller bug.
//
// Usage:
//
//	p := pool.New[bytes.Buffer](64)
//	b, err := p.Alloc(bytes.Buffer{})
//	if err != nil {
//	    return err // out of slots on the bounded engine
//	}
//	defer b.Free()
//	buf := b.Value()
//	// ... use buf ...
package pool
