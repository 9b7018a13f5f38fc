package buffer

// ----------------------------------------------------------------------------
// Storage Engine Contract
// ----------------------------------------------------------------------------

// Buffer is the capability contract of a storage engine: an ordered,
// index-addressable run of elements with engine-defined growth policy. The
// container facades in lib/vec and lib/text are written purely against this
// contract; which engine satisfies it is decided by the build configuration,
// not at runtime.
type Buffer[T any] interface {
	// Append stores one element after the existing ones. The growable engine
	// reallocates as needed and never returns an error; the bounded engine
	// returns mayheap.ErrBufferOverflow when the buffer is full, storing
	// nothing.
	Append(item T) error

	// AppendSlice stores all of items in order, or none of them. On error the
	// buffer is exactly as it was. Append semantics otherwise match Append.
	AppendSlice(items []T) error

	// Truncate keeps the first n elements and releases the rest. Calling it
	// with n >= Len() is a no-op; a negative n panics.
	Truncate(n int)

	// Clear releases every element, leaving an empty buffer with its capacity
	// intact.
	Clear()

	// Len returns the number of stored elements.
	Len() int

	// Cap returns the element capacity: the construction capacity for the
	// bounded engine, the current allocation for the growable one.
	Cap() int

	// Full reports whether Len() == Cap(). For the bounded engine this means
	// the next Append fails; for the growable engine it merely means the next
	// Append reallocates.
	Full() bool

	// Slice returns the live window over the stored elements, in order. The
	// window shares storage with the buffer: writes through it are visible to
	// the buffer, and growth may invalidate it.
	Slice() []T
}

// Factory builds an empty buffer with the given capacity. The conformance
// suite in buffer/testing is parameterized over factories so both engines run
// identical contract tests.
type Factory[T any] func(capacity int) Buffer[T]
