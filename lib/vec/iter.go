package vec

import "iter"

// ----------------------------------------------------------------------------
// Iteration
// ----------------------------------------------------------------------------

// Values returns a borrowed forward iterator over the elements. The sequence
// is restartable and leaves the container untouched; the container must not
// grow while a pass is in progress.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.buf.Slice() {
			if !yield(item) {
				return
			}
		}
	}
}

// All returns a borrowed iterator over index/element pairs, front to back.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.buf.Slice() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator. Elements are handed out front to back,
// each slot being released as its element is yielded; when the pass ends,
// exhausted or abandoned early, the un-yielded tail is released too and the
// container is empty. Every element is handed out or released exactly once.
func (v *Vec[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := v.buf.Slice()
		for i := range s {
			item := s[i]
			var zero T
			s[i] = zero
			if !yield(item) {
				break
			}
		}
		v.buf.Clear()
	}
}

// ExtendSeq appends every element the sequence yields, or none: the sequence
// is drained into scratch storage first, so a capacity failure reports
// mayheap.ErrBufferOverflow with the container untouched.
func (v *Vec[T]) ExtendSeq(seq iter.Seq[T]) error {
	var scratch []T
	for item := range seq {
		scratch = append(scratch, item)
	}
	return v.buf.AppendSlice(scratch)
}

// Collect builds a container of the given capacity from a sequence. Under the
// bounded engine a sequence that does not fit fails with
// mayheap.ErrBufferOverflow and no container is returned.
func Collect[T any](capacity int, seq iter.Seq[T]) (*Vec[T], error) {
	v := New[T](capacity)
	if err := v.ExtendSeq(seq); err != nil {
		return nil, err
	}
	return v, nil
}
