package codec

import (
	"github.com/zeenix/mayheap/lib/text"
	"github.com/zeenix/mayheap/lib/vec"
)

// --------------------------------------------------------------------------
// Container Bridging
// --------------------------------------------------------------------------

// EncodeVec encodes a sequence container's logical content with c. Capacity
// and storage engine leave no trace, so equal content encodes identically
// under both builds.
func EncodeVec[T any](c ICodec, v *vec.Vec[T]) ([]byte, error) {
	s := v.Slice()
	if s == nil {
		s = []T{}
	}
	return c.Encode(s)
}

// DecodeVec decodes data with c into a fresh sequence container of the given
// capacity. Content that does not fit bounded storage fails with
// mayheap.ErrBufferOverflow, and no container is returned on any failure.
func DecodeVec[T any](c ICodec, data []byte, capacity int) (*vec.Vec[T], error) {
	var items []T
	if err := c.Decode(data, &items); err != nil {
		return nil, err
	}
	return vec.FromSlice(capacity, items)
}

// EncodeString encodes a text container's content with c.
func EncodeString(c ICodec, s *text.String) ([]byte, error) {
	return c.Encode(s.String())
}

// DecodeString decodes data with c into a fresh text container of the given
// capacity. The UTF-8 gate applies before the capacity check: decoded bytes
// that are not valid UTF-8 fail with mayheap.ErrInvalidUTF8.
func DecodeString(c ICodec, data []byte, capacity int) (*text.String, error) {
	var str string
	if err := c.Decode(data, &str); err != nil {
		return nil, err
	}
	return text.FromString(capacity, str)
}
