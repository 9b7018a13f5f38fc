// Package heapbuf implements the growable storage engine behind the buffer
// contract. Storage lives on the Go heap and follows the runtime's slice
// growth discipline: the capacity passed at construction is an initial
// reservation, appends reallocate when it runs out, and no append ever fails
// for capacity reasons. Running out of memory is a runtime fatal condition,
// not an error this engine reports.
//
// This is the engine every container binds to in a default build; see the
// module root documentation for how the heapless build tag swaps it for the
// bounded engine.
package heapbuf
