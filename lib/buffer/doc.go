// Package buffer defines the storage-engine contract shared by every container
// in this module. A Buffer stores an ordered run of elements; the two engine
// packages underneath implement the same contract with opposite growth
// policies, and the container facades bind one of them at build time.
//
// Key Features:
//   - One small interface (Buffer) both engines satisfy, asserted at compile time
//   - heapbuf: growable storage, appends reallocate and never fail
//   - fixedbuf: bounded storage, one allocation ever, appends past the ceiling
//     fail with mayheap.ErrBufferOverflow
//   - A shared conformance suite (buffer/testing) run by both engine packages
//
// Contract Notes:
//
//   - AppendSlice is atomic: it either stores every element or returns an error
//     having stored none. Facade operations rely on this to provide their own
//     all-or-nothing guarantees without knowing which engine is bound.
//
//   - Truncate and Clear release the storage of the elements they discard by
//     zeroing the vacated slots, so values referenced only by the buffer become
//     collectable immediately.
//
//   - Slice returns the engine's live element window, not a copy. Growable
//     engines may move storage when they grow, which invalidates previously
//     returned windows exactly like a reallocated Go slice.
//
// Thread Safety:
//
//	Buffers are single-owner values, like the containers built on them. They
//	provide no internal synchronization.
package buffer
