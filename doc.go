// Package mayheap provides ordered containers that expose one unified API over
// two mutually exclusive storage strategies: growable heap-backed storage and
// bounded fixed-capacity storage. The strategy is selected when the program is
// built, not when it runs, so code written against the containers compiles and
// behaves identically under either backend except for the documented
// capacity-failure asymmetry.
//
// Key Features:
//   - One container API, two interchangeable storage engines
//   - Build-time engine selection with zero per-call dynamic dispatch
//   - Atomic failure semantics: a failed operation leaves its container untouched
//   - A closed two-error model testable with errors.Is
//   - Pluggable serialization with round-trip guarantees
//
// Backend Selection:
//
//	The default build binds every container to the growable engine
//	(lib/buffer/heapbuf): appends reallocate as needed and never fail for
//	capacity reasons. Building with
//
//	    go build -tags heapless
//
//	binds the bounded engine (lib/buffer/fixedbuf) instead: the capacity given
//	at construction is a hard ceiling, allocated exactly once, and any
//	operation that would exceed it fails with ErrBufferOverflow. There is no
//	way to select both engines, neither engine, or a different engine per
//	container; selection is global to the build, and no API reports which
//	engine is active.
//
// Packages:
//   - lib/vec: the generic sequence container (Vec)
//   - lib/text: the UTF-8 text container (String)
//   - lib/codec: serialization adapters (json, gob, binary)
//   - lib/pool: a fixed-slot object pool with the same engine split
//   - lib/buffer: the storage-engine contract shared by all of the above
//
// Usage Example:
//
//	v := vec.New[int](4)
//	if err := v.Extend(7, 1, 2, 3); err != nil {
//		// only possible under the bounded engine
//		log.Fatal(err)
//	}
//	last, _ := v.Pop() // 3
//
// This root package carries only the error model; the containers live in the
// packages above so that each can be adopted independently.
package mayheap
