package vec

import "encoding/json"

// ----------------------------------------------------------------------------
// JSON encoding
// ----------------------------------------------------------------------------

// MarshalJSON encodes the element window as a plain JSON array. Capacity and
// engine leave no trace in the encoding, so any two containers with equal
// content encode identically.
func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	s := v.buf.Slice()
	if s == nil {
		s = []T{}
	}
	return json.Marshal(s)
}

// UnmarshalJSON replaces the content with the decoded array. The decode stages
// into a fresh buffer of the receiver's capacity and swaps only on success, so
// malformed input or a capacity overflow (bounded engine,
// mayheap.ErrBufferOverflow) leaves the receiver untouched. A JSON null is a
// no-op, per the encoding/json convention.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	next := newStorage[T](v.buf.Cap())
	if err := next.AppendSlice(items); err != nil {
		return err
	}
	v.buf = next
	return nil
}
