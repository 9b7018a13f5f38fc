package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
)

// NewBinaryCodec creates a new codec using a custom binary format optimized
// for container content: compact, deterministic and versioned
func NewBinaryCodec() ICodec {
	return &binaryCodecImpl{}
}

// binaryCodecImpl implements ICodec using a custom binary format
type binaryCodecImpl struct {
}

// Wire layout: two magic bytes and a version, one kind tag, then the payload.
// Slices carry the element kind tag with the list flag set, a varint element
// count and the elements in order; a top-level string or byte blob carries its
// bare kind tag, a varint byte length and the raw bytes.
const (
	wireMagic0  byte = 'm'
	wireMagic1  byte = 'h'
	wireVersion byte = 0x01

	listFlag byte = 0x80
)

// Element kind tags. Fixed-width kinds are encoded little-endian; string and
// byte-blob elements are varint-length-prefixed.
const (
	kindBool    byte = 0x01
	kindInt8    byte = 0x02
	kindInt16   byte = 0x03
	kindInt32   byte = 0x04
	kindInt64   byte = 0x05
	kindUint8   byte = 0x06
	kindUint16  byte = 0x07
	kindUint32  byte = 0x08
	kindUint64  byte = 0x09
	kindFloat32 byte = 0x0a
	kindFloat64 byte = 0x0b
	kindString  byte = 0x0c
	kindBytes   byte = 0x0d
)

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ICodec)
// --------------------------------------------------------------------------

func (c binaryCodecImpl) Name() string {
	return "binary"
}

func (c binaryCodecImpl) Encode(v any) ([]byte, error) {
	buf := []byte{wireMagic0, wireMagic1, wireVersion}

	// Top-level blobs carry their bare kind tag
	switch val := v.(type) {
	case string:
		buf = append(buf, kindString)
		buf = binary.AppendUvarint(buf, uint64(len(val)))
		return append(buf, val...), nil
	case []byte:
		buf = append(buf, kindBytes)
		buf = binary.AppendUvarint(buf, uint64(len(val)))
		return append(buf, val...), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	kind, ok := elementKind(rv.Type().Elem())
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	buf = append(buf, kind|listFlag)
	buf = binary.AppendUvarint(buf, uint64(rv.Len()))
	for i := 0; i < rv.Len(); i++ {
		buf = appendElement(buf, kind, rv.Index(i))
	}
	return buf, nil
}

func (c binaryCodecImpl) Decode(data []byte, out any) error {
	if len(data) < 4 {
		return corruptf("data too short for header")
	}
	if data[0] != wireMagic0 || data[1] != wireMagic1 {
		return corruptf("bad magic 0x%02x%02x", data[0], data[1])
	}
	if data[2] != wireVersion {
		return corruptf("unsupported version 0x%02x", data[2])
	}
	tag := data[3]
	payload := data[4:]

	// Top-level blobs decode by exact pointer type
	switch ptr := out.(type) {
	case *string:
		if tag != kindString {
			return corruptf("kind tag 0x%02x for string output", tag)
		}
		blob, rest, err := readBlob(payload)
		if err != nil {
			return err
		}
		if len(rest) != 0 {
			return corruptf("%d trailing bytes", len(rest))
		}
		*ptr = string(blob)
		return nil
	case *[]byte:
		if tag != kindBytes {
			return corruptf("kind tag 0x%02x for byte output", tag)
		}
		blob, rest, err := readBlob(payload)
		if err != nil {
			return err
		}
		if len(rest) != 0 {
			return corruptf("%d trailing bytes", len(rest))
		}
		*ptr = append([]byte(nil), blob...)
		return nil
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, out)
	}
	sliceType := rv.Elem().Type()
	kind, ok := elementKind(sliceType.Elem())
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, out)
	}
	if tag != kind|listFlag {
		return corruptf("kind tag 0x%02x for %s output", tag, sliceType)
	}

	count, rest, err := readUvarint(payload)
	if err != nil {
		return err
	}
	// every element occupies at least one byte, so this also bounds the
	// allocation below
	if count > uint64(len(rest)) {
		return corruptf("element count %d exceeds remaining %d bytes", count, len(rest))
	}
	if size := fixedSize(kind); size > 1 && uint64(len(rest)) < count*uint64(size) {
		return corruptf("data too short for %d elements of %d bytes", count, size)
	}

	slice := reflect.MakeSlice(sliceType, int(count), int(count))
	for i := 0; i < int(count); i++ {
		rest, err = readElement(rest, kind, slice.Index(i))
		if err != nil {
			return err
		}
	}
	if len(rest) != 0 {
		return corruptf("%d trailing bytes", len(rest))
	}
	rv.Elem().Set(slice)
	return nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// elementKind maps a Go element type to its wire kind. Named types map by
// their underlying kind, so slices of named integers round-trip unchanged.
func elementKind(t reflect.Type) (byte, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return kindBool, true
	case reflect.Int8:
		return kindInt8, true
	case reflect.Int16:
		return kindInt16, true
	case reflect.Int32:
		return kindInt32, true
	case reflect.Int64, reflect.Int:
		return kindInt64, true
	case reflect.Uint8:
		return kindUint8, true
	case reflect.Uint16:
		return kindUint16, true
	case reflect.Uint32:
		return kindUint32, true
	case reflect.Uint64, reflect.Uint:
		return kindUint64, true
	case reflect.Float32:
		return kindFloat32, true
	case reflect.Float64:
		return kindFloat64, true
	case reflect.String:
		return kindString, true
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return kindBytes, true
		}
	}
	return 0, false
}

// fixedSize returns the encoded size of a fixed-width kind, or 0 for the
// length-prefixed ones.
func fixedSize(kind byte) int {
	switch kind {
	case kindBool, kindInt8, kindUint8:
		return 1
	case kindInt16, kindUint16:
		return 2
	case kindInt32, kindUint32, kindFloat32:
		return 4
	case kindInt64, kindUint64, kindFloat64:
		return 8
	default:
		return 0
	}
}

// appendElement writes one element of the given kind. The kind has been
// validated against the element type, so the value accessors cannot panic.
func appendElement(buf []byte, kind byte, rv reflect.Value) []byte {
	switch kind {
	case kindBool:
		if rv.Bool() {
			return append(buf, 1)
		}
		return append(buf, 0)
	case kindInt8:
		return append(buf, byte(rv.Int()))
	case kindInt16:
		return binary.LittleEndian.AppendUint16(buf, uint16(rv.Int()))
	case kindInt32:
		return binary.LittleEndian.AppendUint32(buf, uint32(rv.Int()))
	case kindInt64:
		return binary.LittleEndian.AppendUint64(buf, uint64(rv.Int()))
	case kindUint8:
		return append(buf, byte(rv.Uint()))
	case kindUint16:
		return binary.LittleEndian.AppendUint16(buf, uint16(rv.Uint()))
	case kindUint32:
		return binary.LittleEndian.AppendUint32(buf, uint32(rv.Uint()))
	case kindUint64:
		return binary.LittleEndian.AppendUint64(buf, rv.Uint())
	case kindFloat32:
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(rv.Float())))
	case kindFloat64:
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(rv.Float()))
	case kindString:
		s := rv.String()
		buf = binary.AppendUvarint(buf, uint64(len(s)))
		return append(buf, s...)
	case kindBytes:
		b := rv.Bytes()
		buf = binary.AppendUvarint(buf, uint64(len(b)))
		return append(buf, b...)
	default:
		panic(fmt.Sprintf("mayheap: unhandled wire kind 0x%02x", kind))
	}
}

// readElement decodes one element of the given kind into rv and returns the
// remaining payload.
func readElement(b []byte, kind byte, rv reflect.Value) ([]byte, error) {
	if size := fixedSize(kind); size > 0 {
		if len(b) < size {
			return nil, corruptf("data too short for element")
		}
		raw, rest := b[:size], b[size:]
		switch kind {
		case kindBool:
			rv.SetBool(raw[0] != 0)
		case kindInt8:
			rv.SetInt(int64(int8(raw[0])))
		case kindInt16:
			rv.SetInt(int64(int16(binary.LittleEndian.Uint16(raw))))
		case kindInt32:
			rv.SetInt(int64(int32(binary.LittleEndian.Uint32(raw))))
		case kindInt64:
			rv.SetInt(int64(binary.LittleEndian.Uint64(raw)))
		case kindUint8:
			rv.SetUint(uint64(raw[0]))
		case kindUint16:
			rv.SetUint(uint64(binary.LittleEndian.Uint16(raw)))
		case kindUint32:
			rv.SetUint(uint64(binary.LittleEndian.Uint32(raw)))
		case kindUint64:
			rv.SetUint(binary.LittleEndian.Uint64(raw))
		case kindFloat32:
			rv.SetFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(raw))))
		case kindFloat64:
			rv.SetFloat(math.Float64frombits(binary.LittleEndian.Uint64(raw)))
		}
		return rest, nil
	}

	blob, rest, err := readBlob(b)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindString:
		rv.SetString(string(blob))
	case kindBytes:
		rv.SetBytes(append([]byte(nil), blob...))
	}
	return rest, nil
}

// readUvarint consumes one varint and returns the remaining payload.
func readUvarint(b []byte) (uint64, []byte, error) {
	n, size := binary.Uvarint(b)
	if size <= 0 {
		return 0, nil, corruptf("truncated varint")
	}
	return n, b[size:], nil
}

// readBlob consumes one varint-length-prefixed byte run. The returned blob
// aliases the payload; callers that keep it must copy.
func readBlob(b []byte) ([]byte, []byte, error) {
	n, rest, err := readUvarint(b)
	if err != nil {
		return nil, nil, err
	}
	if uint64(len(rest)) < n {
		return nil, nil, corruptf("blob length %d exceeds remaining %d bytes", n, len(rest))
	}
	return rest[:n], rest[n:], nil
}

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptPayload, fmt.Sprintf(format, args...))
}
