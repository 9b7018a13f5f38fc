// Package vec provides Vec, an ordered generic sequence container with one
// API over the module's two storage engines. A default build binds every Vec
// to the growable engine; building with -tags heapless binds the bounded one.
// Code using Vec compiles unchanged under either build.
//
// Key Features:
//   - Construction-time capacity: an initial reservation (growable) or a hard
//     ceiling (bounded)
//   - Atomic failure: an operation that returns an error has done nothing
//   - Full editing surface: push/pop, insert/remove/swap-remove, retain,
//     resize, truncate
//   - Borrowed and consuming iteration via iter.Seq
//   - Content equality helpers in the standard library's slices shape
//   - JSON encoding of the logical content only; capacity and engine leave no
//     trace on the wire
//
// Capacity:
//
//	The capacity passed to New and FromSlice is fixed for the container's
//	lifetime in the sense that matters: the bounded engine never exceeds it,
//	and no operation changes it retroactively. Moving content to a different
//	ceiling is an explicit act:
//
//	    wider, err := vec.FromSlice(16, v.Slice())
//
// Failure Model:
//
//	Under the bounded engine any operation that would exceed capacity fails
//	with mayheap.ErrBufferOverflow and leaves the container exactly as it was;
//	under the growable engine those operations reallocate and succeed. That is
//	the only observable behavioral difference between builds. Index misuse
//	panics under both, like a Go slice.
//
// Thread Safety:
//
//	A Vec is a single-owner value with no internal synchronization. Callers
//	that share one across goroutines must provide their own.
package vec
