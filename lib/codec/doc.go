// Package codec provides interchangeable byte encodings for the module's
// containers. It defines a common interface and multiple implementations, so
// container content can cross a wire or a file in whichever format the
// surrounding system speaks.
//
// The package focuses on:
//   - Providing a consistent interface for different encoding formats
//   - Encoding logical content only: capacity and storage engine leave no
//     trace, so both builds of a program exchange identical bytes
//   - Keeping decode failures harmless: decoding constructs fresh containers,
//     so no failure can corrupt existing state
//
// Key Components:
//
//   - ICodec: Core interface that all codec implementations must satisfy.
//
//   - binaryCodecImpl: Custom binary format optimized for container content: a
//     fixed header, one kind tag and a varint element count, followed by
//     little-endian fixed-width elements or varint-length-prefixed blobs.
//     Compact and deterministic, the format for stored fixtures.
//
//   - gobCodecImpl: Implementation using Go's built-in gob encoding, offering
//     good compatibility with Go's type system but with larger payloads and
//     Go-only peers.
//
//   - jsonCodecImpl: Implementation using JSON encoding, useful for debugging
//     or interoperability with other systems, but with lower performance.
//
// The top-level Encode/Decode functions bridge codecs to the container types:
// EncodeVec and DecodeVec for sequence containers, EncodeString and
// DecodeString for text. Decoding builds a container of caller-chosen
// capacity, and under the bounded engine content that does not fit fails with
// mayheap.ErrBufferOverflow before any container exists.
//
// Thread Safety:
//
//	All codec implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	Codecs are typically created once and reused throughout the application:
//
//	  c := codec.NewBinaryCodec()
//	  data, err := codec.EncodeVec(c, v)
//	  // ... store or send data ...
//	  w, err := codec.DecodeVec[int64](c, data, 64)
package codec
