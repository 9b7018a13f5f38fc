package mayheap

import "errors"

// ----------------------------------------------------------------------------
// Error Model
// ----------------------------------------------------------------------------

// The library distinguishes exactly two failure conditions, published as
// sentinel errors so callers can test them with errors.Is regardless of how a
// component wrapped them. Errors never identify the storage engine that raised
// them; a caller can only know the engine from its own build configuration.
var (
	// ErrBufferOverflow reports that an operation would have grown a container
	// beyond its fixed capacity. Only the bounded engine produces it; under the
	// growable engine appends reallocate instead of failing. The failed
	// operation has no partial effect.
	ErrBufferOverflow = errors.New("mayheap: buffer overflow")

	// ErrInvalidUTF8 reports that bytes intended to become text are not valid
	// UTF-8, or that a rune is not a valid Unicode scalar value. The rejected
	// bytes are not stored, in whole or in part.
	ErrInvalidUTF8 = errors.New("mayheap: invalid utf-8")
)
