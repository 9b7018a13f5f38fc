package text

import (
	"io"
	"unicode/utf8"

	"github.com/zeenix/mayheap"
)

// the fmt package picks these up, so Fprintf renders straight into the
// container
var (
	_ io.Writer       = (*String)(nil)
	_ io.StringWriter = (*String)(nil)
)

// ----------------------------------------------------------------------------
// Writer integration
// ----------------------------------------------------------------------------

// Write implements io.Writer with the container's atomic failure model: p is
// appended whole or not at all, and a failed write reports 0 bytes written.
// Each call must carry complete UTF-8 sequences; a rune split across calls is
// rejected as invalid.
func (s *String) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, mayheap.ErrInvalidUTF8
	}
	if err := s.buf.Extend(p...); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString implements io.StringWriter, appending atomically like PushStr.
func (s *String) WriteString(str string) (int, error) {
	if err := s.PushStr(str); err != nil {
		return 0, err
	}
	return len(str), nil
}

// WriteRune appends one rune's UTF-8 encoding and reports its size in bytes.
// Values that are not Unicode scalar values fail with mayheap.ErrInvalidUTF8.
func (s *String) WriteRune(r rune) (int, error) {
	if !utf8.ValidRune(r) {
		return 0, mayheap.ErrInvalidUTF8
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	if err := s.buf.Extend(enc[:n]...); err != nil {
		return 0, err
	}
	return n, nil
}
