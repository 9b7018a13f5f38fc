// Package fixedbuf implements the bounded storage engine behind the buffer
// contract. The capacity passed at construction buys exactly one allocation,
// ever: the engine never reallocates, and any append that would push the
// element count past the ceiling fails with mayheap.ErrBufferOverflow while
// leaving the buffer untouched. Bulk appends check the ceiling before copying
// anything, so they are atomic.
//
// The engine is selected for every container by building with the heapless
// tag; see the module root documentation. It gives containers the profile of
// preallocated static storage: predictable memory, a hard ceiling, and
// overflow as a recoverable error rather than a growth event.
package fixedbuf
