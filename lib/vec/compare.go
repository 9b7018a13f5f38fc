package vec

import "slices"

// ----------------------------------------------------------------------------
// Content comparison
// ----------------------------------------------------------------------------
//
// Comparison is by content only: capacity and engine never participate, so
// containers built with different ceilings, or under different builds, compare
// equal whenever their elements do. The helpers are package functions in the
// standard library's slices shape because methods cannot introduce the
// comparable constraint.

// Equal reports element-wise equality of two containers. A nil container
// equals an empty one.
func Equal[T comparable](a, b *Vec[T]) bool {
	return slices.Equal(view(a), view(b))
}

// EqualFunc reports element-wise equality of two containers under eq,
// allowing different element types.
func EqualFunc[A, B any](a *Vec[A], b *Vec[B], eq func(A, B) bool) bool {
	return slices.EqualFunc(view(a), view(b), eq)
}

// EqualSlice reports element-wise equality between a container and a plain
// slice.
func EqualSlice[T comparable](v *Vec[T], items []T) bool {
	return slices.Equal(view(v), items)
}

// StartsWith reports whether the container's content begins with prefix. An
// empty prefix always matches.
func StartsWith[T comparable](v *Vec[T], prefix []T) bool {
	s := view(v)
	if len(prefix) > len(s) {
		return false
	}
	return slices.Equal(s[:len(prefix)], prefix)
}

// EndsWith reports whether the container's content ends with suffix. An empty
// suffix always matches.
func EndsWith[T comparable](v *Vec[T], suffix []T) bool {
	s := view(v)
	if len(suffix) > len(s) {
		return false
	}
	return slices.Equal(s[len(s)-len(suffix):], suffix)
}

func view[T any](v *Vec[T]) []T {
	if v == nil {
		return nil
	}
	return v.buf.Slice()
}
