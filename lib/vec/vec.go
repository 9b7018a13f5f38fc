package vec

import "fmt"

// Vec is the sequence container. Create one with New, FromSlice or Collect;
// the zero value has no storage bound and is not usable.
type Vec[T any] struct {
	buf storage[T]
}

// ----------------------------------------------------------------------------
// Construction
// ----------------------------------------------------------------------------

// New returns an empty container with the given capacity: an initial
// reservation under the growable engine, a hard ceiling under the bounded one.
// A negative capacity panics.
func New[T any](capacity int) *Vec[T] {
	return &Vec[T]{buf: newStorage[T](capacity)}
}

// FromSlice returns a container with the given capacity holding a copy of
// items. Under the bounded engine items that do not fit fail with
// mayheap.ErrBufferOverflow and no container is returned.
func FromSlice[T any](capacity int, items []T) (*Vec[T], error) {
	v := New[T](capacity)
	if err := v.buf.AppendSlice(items); err != nil {
		return nil, err
	}
	return v, nil
}

// ----------------------------------------------------------------------------
// Appending and removing
// ----------------------------------------------------------------------------

// Push appends one element. Under the bounded engine a full container fails
// with mayheap.ErrBufferOverflow and keeps its content; under the growable
// engine Push never fails.
func (v *Vec[T]) Push(item T) error {
	return v.buf.Append(item)
}

// Pop removes and returns the last element. The second return is false when
// the container is empty. The vacated slot is released.
func (v *Vec[T]) Pop() (T, bool) {
	n := v.buf.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	item := v.buf.Slice()[n-1]
	v.buf.Truncate(n - 1)
	return item, true
}

// Extend appends all of items, or none: a capacity failure reports
// mayheap.ErrBufferOverflow with the container untouched.
func (v *Vec[T]) Extend(items ...T) error {
	return v.buf.AppendSlice(items)
}

// Insert places item at index i, shifting later elements one position right.
// i == Len() appends. An out-of-range index panics; a capacity failure reports
// mayheap.ErrBufferOverflow before anything has moved.
func (v *Vec[T]) Insert(i int, item T) error {
	n := v.buf.Len()
	if i < 0 || i > n {
		panic(fmt.Sprintf("mayheap: insertion index %d out of range with length %d", i, n))
	}
	if err := v.buf.Append(item); err != nil {
		return err
	}
	s := v.buf.Slice()
	copy(s[i+1:], s[i:n])
	s[i] = item
	return nil
}

// Remove removes and returns the element at index i, shifting later elements
// one position left. An out-of-range index panics.
func (v *Vec[T]) Remove(i int) T {
	v.boundsCheck(i)
	s := v.buf.Slice()
	item := s[i]
	copy(s[i:], s[i+1:])
	v.buf.Truncate(len(s) - 1)
	return item
}

// SwapRemove removes and returns the element at index i by moving the last
// element into its place. O(1), does not preserve order past i. An
// out-of-range index panics.
func (v *Vec[T]) SwapRemove(i int) T {
	v.boundsCheck(i)
	s := v.buf.Slice()
	item := s[i]
	s[i] = s[len(s)-1]
	v.buf.Truncate(len(s) - 1)
	return item
}

// Retain keeps only the elements keep reports true for, preserving their
// relative order. Dropped slots are released.
func (v *Vec[T]) Retain(keep func(item T) bool) {
	s := v.buf.Slice()
	kept := 0
	for i := range s {
		if keep(s[i]) {
			s[kept] = s[i]
			kept++
		}
	}
	v.buf.Truncate(kept)
}

// Resize sets the length to n: shrinking releases the tail, growing appends
// copies of fill. Growth past the ceiling fails with mayheap.ErrBufferOverflow
// and changes nothing. A negative n panics.
func (v *Vec[T]) Resize(n int, fill T) error {
	if n < 0 {
		panic(fmt.Sprintf("mayheap: negative length %d", n))
	}
	cur := v.buf.Len()
	if n <= cur {
		v.buf.Truncate(n)
		return nil
	}
	extra := make([]T, n-cur)
	for i := range extra {
		extra[i] = fill
	}
	return v.buf.AppendSlice(extra)
}

// Truncate keeps the first n elements and releases the rest; n >= Len() is a
// no-op. A negative n panics.
func (v *Vec[T]) Truncate(n int) {
	v.buf.Truncate(n)
}

// Clear releases every element, keeping the capacity.
func (v *Vec[T]) Clear() {
	v.buf.Clear()
}

// Take removes every element and returns them as a freshly allocated slice the
// caller owns. The container keeps its capacity and ends empty.
func (v *Vec[T]) Take() []T {
	s := v.buf.Slice()
	out := make([]T, len(s))
	copy(out, s)
	v.buf.Clear()
	return out
}

// ----------------------------------------------------------------------------
// Element access
// ----------------------------------------------------------------------------

// Get returns the element at index i. An out-of-range index panics, like a Go
// slice.
func (v *Vec[T]) Get(i int) T {
	v.boundsCheck(i)
	return v.buf.Slice()[i]
}

// Set replaces the element at index i. An out-of-range index panics.
func (v *Vec[T]) Set(i int, item T) {
	v.boundsCheck(i)
	v.buf.Slice()[i] = item
}

// Slice returns the live element window, sharing storage with the container.
// Writes through it are visible to the container; growth under the growable
// engine may detach it, exactly like a reallocated Go slice.
func (v *Vec[T]) Slice() []T {
	return v.buf.Slice()
}

func (v *Vec[T]) boundsCheck(i int) {
	if i < 0 || i >= v.buf.Len() {
		panic(fmt.Sprintf("mayheap: index %d out of range with length %d", i, v.buf.Len()))
	}
}

// ----------------------------------------------------------------------------
// Inspection
// ----------------------------------------------------------------------------

// Len returns the number of stored elements.
func (v *Vec[T]) Len() int { return v.buf.Len() }

// IsEmpty reports whether the container holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.buf.Len() == 0 }

// Cap returns the capacity: constant under the bounded engine, the current
// allocation under the growable one.
func (v *Vec[T]) Cap() int { return v.buf.Cap() }

// IsFull reports whether Len() == Cap(): the next append fails under the
// bounded engine or reallocates under the growable one.
func (v *Vec[T]) IsFull() bool { return v.buf.Full() }

// Clone returns a container of the same capacity holding a copy of the
// elements.
func (v *Vec[T]) Clone() *Vec[T] {
	out := New[T](v.buf.Cap())
	// same capacity, cannot overflow
	_ = out.buf.AppendSlice(v.buf.Slice())
	return out
}

// String formats the element window for debugging, like a Go slice.
func (v *Vec[T]) String() string {
	return fmt.Sprint(v.buf.Slice())
}
