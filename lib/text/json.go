package text

import (
	"bytes"
	"encoding"
	"encoding/json"
	"unicode/utf8"

	"github.com/zeenix/mayheap"
	"github.com/zeenix/mayheap/lib/vec"
)

var (
	_ json.Marshaler           = (*String)(nil)
	_ json.Unmarshaler         = (*String)(nil)
	_ encoding.TextMarshaler   = (*String)(nil)
	_ encoding.TextUnmarshaler = (*String)(nil)
)

// ----------------------------------------------------------------------------
// JSON and text encoding
// ----------------------------------------------------------------------------

// MarshalJSON encodes the content as a plain JSON string. Capacity and engine
// leave no trace in the encoding.
func (s *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON replaces the content with the decoded string. The decode
// stages into fresh storage of the receiver's capacity and swaps only on
// success, so malformed input or a capacity overflow (bounded engine,
// mayheap.ErrBufferOverflow) leaves the receiver untouched. A JSON null is a
// no-op, per the encoding/json convention.
func (s *String) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	return s.replace([]byte(str))
}

// MarshalText encodes the content as its raw UTF-8 bytes.
func (s *String) MarshalText() ([]byte, error) {
	return bytes.Clone(s.buf.Slice()), nil
}

// UnmarshalText replaces the content with data, gated and staged like
// UnmarshalJSON: invalid UTF-8 reports mayheap.ErrInvalidUTF8 and the
// receiver keeps its previous content on every failure.
func (s *String) UnmarshalText(data []byte) error {
	return s.replace(data)
}

// replace swaps in a copy of b after the UTF-8 gate and the capacity check,
// touching the receiver only when both pass.
func (s *String) replace(b []byte) error {
	if !utf8.Valid(b) {
		return mayheap.ErrInvalidUTF8
	}
	next, err := vec.FromSlice(s.buf.Cap(), b)
	if err != nil {
		return err
	}
	s.buf = next
	return nil
}
