package codec

import "errors"

// ICodec is the interface for all container content codecs.
type ICodec interface {
	// Name returns the codec's stable identifier, usable in configuration
	// and log fields.
	Name() string
	// Encode encodes a value into a byte array.
	// It returns the encoded byte array and an error if any.
	Encode(v any) ([]byte, error)
	// Decode decodes a byte array into the value out points to.
	// It takes a byte array and a pointer as parameters.
	// It returns an error if any.
	Decode(data []byte, out any) error
}

// Sentinels reported by the binary codec. They are deliberately separate from
// the container error model: container semantics know overflow and encoding
// validity, wire corruption belongs to the codec that owns the wire.
var (
	// ErrUnsupportedType reports a value whose type the binary format cannot
	// carry.
	ErrUnsupportedType = errors.New("mayheap: codec: unsupported type")

	// ErrCorruptPayload reports input that is not a well-formed binary
	// payload: wrong magic or version, a kind tag that does not match the
	// output type, or truncated or trailing bytes.
	ErrCorruptPayload = errors.New("mayheap: codec: corrupt payload")
)
