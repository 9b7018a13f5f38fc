package text

import (
	"bytes"
	"fmt"
	"iter"
	"strconv"
	"unicode/utf8"

	"github.com/zeenix/mayheap"
	"github.com/zeenix/mayheap/lib/vec"
)

// String is the text container: UTF-8 bytes in backend-selected storage.
// Create one with New or the From family; the zero value has no storage bound
// and is not usable.
type String struct {
	buf *vec.Vec[byte]
}

// ----------------------------------------------------------------------------
// Construction
// ----------------------------------------------------------------------------

// New returns an empty text container with the given capacity in bytes: an
// initial reservation under the growable engine, a hard ceiling under the
// bounded one. A negative capacity panics.
func New(capacity int) *String {
	return &String{buf: vec.New[byte](capacity)}
}

// FromString returns a text container with the given capacity holding a copy
// of str. A Go string may hold arbitrary bytes, so str is gated first:
// invalid UTF-8 fails with mayheap.ErrInvalidUTF8, then content that does not
// fit bounded storage fails with mayheap.ErrBufferOverflow.
func FromString(capacity int, str string) (*String, error) {
	if !utf8.ValidString(str) {
		return nil, mayheap.ErrInvalidUTF8
	}
	return fromVerified(capacity, []byte(str))
}

// FromBytes returns a text container with the given capacity holding a copy
// of b, gated the same way as FromString.
func FromBytes(capacity int, b []byte) (*String, error) {
	if !utf8.Valid(b) {
		return nil, mayheap.ErrInvalidUTF8
	}
	return fromVerified(capacity, b)
}

// FromVec wraps an existing byte container as text without copying. On
// success the container's storage now belongs to the returned String and v
// must not be used again; on failure v is untouched and
// mayheap.ErrInvalidUTF8 is returned.
func FromVec(v *vec.Vec[byte]) (*String, error) {
	if !utf8.Valid(v.Slice()) {
		return nil, mayheap.ErrInvalidUTF8
	}
	return &String{buf: v}, nil
}

// FromInt returns a text container holding the decimal rendering of n.
// Renderings that do not fit bounded storage fail with
// mayheap.ErrBufferOverflow.
func FromInt(capacity int, n int64) (*String, error) {
	return fromVerified(capacity, []byte(strconv.FormatInt(n, 10)))
}

// FromUint is FromInt for unsigned values.
func FromUint(capacity int, n uint64) (*String, error) {
	return fromVerified(capacity, []byte(strconv.FormatUint(n, 10)))
}

// fromVerified builds the container from bytes already known to be valid
// UTF-8, leaving only the capacity check.
func fromVerified(capacity int, b []byte) (*String, error) {
	v, err := vec.FromSlice(capacity, b)
	if err != nil {
		return nil, err
	}
	return &String{buf: v}, nil
}

// ----------------------------------------------------------------------------
// Editing
// ----------------------------------------------------------------------------

// PushStr appends str, atomically: invalid UTF-8 fails with
// mayheap.ErrInvalidUTF8 and an overflow of bounded storage with
// mayheap.ErrBufferOverflow, nothing appended in either case.
func (s *String) PushStr(str string) error {
	if !utf8.ValidString(str) {
		return mayheap.ErrInvalidUTF8
	}
	return s.buf.Extend([]byte(str)...)
}

// Push appends one rune's UTF-8 encoding. Values that are not Unicode scalar
// values (surrogates, out-of-range code points) fail with
// mayheap.ErrInvalidUTF8 rather than being silently replaced.
func (s *String) Push(r rune) error {
	_, err := s.WriteRune(r)
	return err
}

// Pop removes and returns the last rune. The second return is false when the
// container is empty. The vacated bytes are released.
func (s *String) Pop() (rune, bool) {
	b := s.buf.Slice()
	if len(b) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(b)
	s.buf.Truncate(len(b) - size)
	return r, true
}

// Remove removes and returns the rune whose encoding starts at byte offset i,
// shifting later bytes left. An out-of-range offset or one inside an encoded
// rune panics.
func (s *String) Remove(i int) rune {
	b := s.buf.Slice()
	if i < 0 || i >= len(b) {
		panic(fmt.Sprintf("mayheap: byte index %d out of range with length %d", i, len(b)))
	}
	if !utf8.RuneStart(b[i]) {
		panic(fmt.Sprintf("mayheap: byte index %d is not a rune boundary", i))
	}
	r, size := utf8.DecodeRune(b[i:])
	copy(b[i:], b[i+size:])
	s.buf.Truncate(len(b) - size)
	return r
}

// Truncate keeps the first n bytes and releases the rest; n >= Len() is a
// no-op. An offset inside an encoded rune or a negative one panics.
func (s *String) Truncate(n int) {
	b := s.buf.Slice()
	if n >= len(b) {
		return
	}
	if n < 0 {
		panic(fmt.Sprintf("mayheap: negative truncation length %d", n))
	}
	if !utf8.RuneStart(b[n]) {
		panic(fmt.Sprintf("mayheap: byte index %d is not a rune boundary", n))
	}
	s.buf.Truncate(n)
}

// Clear releases every byte, keeping the capacity.
func (s *String) Clear() {
	s.buf.Clear()
}

// ----------------------------------------------------------------------------
// Views and inspection
// ----------------------------------------------------------------------------

// String returns the content as a Go string copy.
func (s *String) String() string {
	return string(s.buf.Slice())
}

// Bytes returns the live byte window, sharing storage with the container.
// Treat it as read-only: writing through it can break the UTF-8 invariant.
func (s *String) Bytes() []byte {
	return s.buf.Slice()
}

// Runes returns a borrowed iterator over byte-offset/rune pairs, front to
// back. Offsets step by each rune's encoded size, exactly like ranging over a
// Go string.
func (s *String) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		b := s.buf.Slice()
		for i := 0; i < len(b); {
			r, size := utf8.DecodeRune(b[i:])
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}

// TakeBytes hands the underlying byte container to the caller and leaves the
// String empty with a fresh reservation of the same capacity. No bytes are
// copied; the returned container holds valid UTF-8 until the caller edits it.
func (s *String) TakeBytes() *vec.Vec[byte] {
	out := s.buf
	s.buf = vec.New[byte](out.Cap())
	return out
}

// Clone returns a text container of the same capacity holding a copy of the
// content.
func (s *String) Clone() *String {
	return &String{buf: s.buf.Clone()}
}

// Len returns the content length in bytes, not runes.
func (s *String) Len() int { return s.buf.Len() }

// IsEmpty reports whether the container holds no bytes.
func (s *String) IsEmpty() bool { return s.buf.IsEmpty() }

// Cap returns the capacity in bytes: constant under the bounded engine, the
// current allocation under the growable one.
func (s *String) Cap() int { return s.buf.Cap() }

// IsFull reports whether Len() == Cap(): the next append fails under the
// bounded engine or reallocates under the growable one.
func (s *String) IsFull() bool { return s.buf.IsFull() }

// ----------------------------------------------------------------------------
// Comparison
// ----------------------------------------------------------------------------
//
// Comparison is by content only: capacity and engine never participate.

// Equal reports byte-wise equality of two text containers. A nil container
// equals an empty one.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(view(s), view(other))
}

// EqualString reports whether the content equals str byte for byte.
func (s *String) EqualString(str string) bool {
	return string(view(s)) == str
}

// Compare orders two text containers lexicographically by bytes, which for
// valid UTF-8 is code-point order. The result is -1, 0 or +1 like
// bytes.Compare.
func (s *String) Compare(other *String) int {
	return bytes.Compare(view(s), view(other))
}

func view(s *String) []byte {
	if s == nil {
		return nil
	}
	return s.buf.Slice()
}
