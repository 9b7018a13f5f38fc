package text

import (
	"fmt"
	"testing"

	"github.com/zeenix/mayheap"
	"github.com/zeenix/mayheap/lib/vec"
)

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", what)
		}
	}()
	fn()
}

// mustFrom builds a seeded text container and fails the test on any error;
// every caller stays inside the capacity so this works under both engines.
func mustFrom(t *testing.T, capacity int, str string) *String {
	t.Helper()
	s, err := FromString(capacity, str)
	if err != nil {
		t.Fatalf("FromString(%d, %q) failed: %v", capacity, str, err)
	}
	return s
}

// TestNewEmpty checks the state of a freshly constructed text container.
func TestNewEmpty(t *testing.T) {
	s := New(8)
	if !s.IsEmpty() || s.Len() != 0 {
		t.Errorf("new container not empty: Len = %d", s.Len())
	}
	if s.Cap() != 8 {
		t.Errorf("Cap = %d, want 8", s.Cap())
	}
	if s.String() != "" {
		t.Errorf("String() = %q", s.String())
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty container returned a rune")
	}
	mustPanic(t, "negative capacity", func() { New(-1) })
}

// TestFromString covers the happy path and the UTF-8 gate.
func TestFromString(t *testing.T) {
	s := mustFrom(t, 16, "héllo")
	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6 bytes", s.Len())
	}
	if !s.EqualString("héllo") {
		t.Errorf("content = %q", s.String())
	}

	bad, err := FromString(16, string([]byte{'a', 0xff, 'b'}))
	if err != mayheap.ErrInvalidUTF8 {
		t.Errorf("invalid input: err = %v", err)
	}
	if bad != nil {
		t.Errorf("FromString returned %v alongside error", bad)
	}
}

// TestFromBytes covers the byte-slice constructor and its gate.
func TestFromBytes(t *testing.T) {
	src := []byte("snow ☃")
	s, err := FromBytes(16, src)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	src[0] = 'X'
	if !s.EqualString("snow ☃") {
		t.Errorf("content shares storage with input: %q", s.String())
	}

	if _, err := FromBytes(16, []byte{0xff, 0xfe}); err != mayheap.ErrInvalidUTF8 {
		t.Errorf("invalid input: err = %v", err)
	}
}

// TestFromVec verifies the no-copy wrap and that a rejected container is left
// untouched.
func TestFromVec(t *testing.T) {
	v, err := vec.FromSlice(8, []byte("abc"))
	if err != nil {
		t.Fatalf("seeding vec failed: %v", err)
	}
	s, err := FromVec(v)
	if err != nil {
		t.Fatalf("FromVec failed: %v", err)
	}
	if !s.EqualString("abc") {
		t.Errorf("content = %q", s.String())
	}

	raw, err := vec.FromSlice(8, []byte{0xff})
	if err != nil {
		t.Fatalf("seeding vec failed: %v", err)
	}
	if _, err := FromVec(raw); err != mayheap.ErrInvalidUTF8 {
		t.Errorf("invalid container: err = %v", err)
	}
	if !vec.EqualSlice(raw, []byte{0xff}) {
		t.Errorf("rejected container was modified: %v", raw)
	}
}

// TestFromNumbers covers the decimal constructors.
func TestFromNumbers(t *testing.T) {
	s, err := FromInt(8, -42)
	if err != nil || !s.EqualString("-42") {
		t.Errorf("FromInt = %v, %v", s, err)
	}
	u, err := FromUint(8, 7)
	if err != nil || !u.EqualString("7") {
		t.Errorf("FromUint = %v, %v", u, err)
	}
}

// TestPushStr grows content across calls, mixing rune widths.
func TestPushStr(t *testing.T) {
	s := New(16)
	for _, part := range []string{"a", "π", "☃"} {
		if err := s.PushStr(part); err != nil {
			t.Fatalf("PushStr(%q) failed: %v", part, err)
		}
	}
	if !s.EqualString("aπ☃") || s.Len() != 6 {
		t.Fatalf("content = %q, Len = %d", s.String(), s.Len())
	}

	if err := s.PushStr(string([]byte{0xc0})); err != mayheap.ErrInvalidUTF8 {
		t.Errorf("invalid input: err = %v", err)
	}
	if !s.EqualString("aπ☃") {
		t.Errorf("content changed on failed PushStr: %q", s.String())
	}
}

// TestPushRune covers rune appends and the scalar-value gate.
func TestPushRune(t *testing.T) {
	s := New(16)
	for _, r := range "aπ☃" {
		if err := s.Push(r); err != nil {
			t.Fatalf("Push(%q) failed: %v", r, err)
		}
	}
	if !s.EqualString("aπ☃") {
		t.Fatalf("content = %q", s.String())
	}

	for _, bad := range []rune{0xD800, 0xDFFF, 0x110000, -1} {
		if err := s.Push(bad); err != mayheap.ErrInvalidUTF8 {
			t.Errorf("Push(%#x): err = %v", bad, err)
		}
	}
	if !s.EqualString("aπ☃") {
		t.Errorf("content changed on rejected runes: %q", s.String())
	}
}

// TestPop removes runes back to front across encoding widths.
func TestPop(t *testing.T) {
	s := mustFrom(t, 16, "aπ☃")
	for _, want := range []rune{'☃', 'π', 'a'} {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Fatalf("Pop = %q, %v; want %q", got, ok, want)
		}
	}
	if !s.IsEmpty() {
		t.Errorf("container not empty after popping everything: %q", s.String())
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty container returned a rune")
	}
}

// TestRemove removes by byte offset and panics on misuse.
func TestRemove(t *testing.T) {
	s := mustFrom(t, 16, "aπb")
	if r := s.Remove(1); r != 'π' {
		t.Fatalf("Remove(1) = %q", r)
	}
	if !s.EqualString("ab") {
		t.Fatalf("content = %q", s.String())
	}

	s = mustFrom(t, 16, "aπ")
	mustPanic(t, "offset inside a rune", func() { s.Remove(2) })
	mustPanic(t, "offset past the end", func() { s.Remove(3) })
	mustPanic(t, "negative offset", func() { s.Remove(-1) })
	if !s.EqualString("aπ") {
		t.Errorf("content changed by panicking Remove: %q", s.String())
	}
}

// TestTruncate keeps prefixes and refuses to split a rune.
func TestTruncate(t *testing.T) {
	s := mustFrom(t, 16, "aπb")
	s.Truncate(10) // past the end, no-op
	if !s.EqualString("aπb") {
		t.Fatalf("content = %q after oversized Truncate", s.String())
	}

	mustPanic(t, "offset inside a rune", func() { s.Truncate(2) })
	mustPanic(t, "negative length", func() { s.Truncate(-1) })

	s.Truncate(1)
	if !s.EqualString("a") {
		t.Fatalf("content = %q", s.String())
	}
	s.Truncate(0)
	if !s.IsEmpty() {
		t.Errorf("container not empty after Truncate(0)")
	}
}

// TestClear empties the container and keeps it usable.
func TestClear(t *testing.T) {
	s := mustFrom(t, 8, "abc")
	s.Clear()
	if !s.IsEmpty() || s.Cap() != 8 {
		t.Fatalf("after Clear: Len = %d, Cap = %d", s.Len(), s.Cap())
	}
	if err := s.PushStr("xy"); err != nil || !s.EqualString("xy") {
		t.Errorf("container unusable after Clear: %q, %v", s.String(), err)
	}
}

// TestRunes walks byte-offset/rune pairs, including an early break.
func TestRunes(t *testing.T) {
	s := mustFrom(t, 16, "aπ☃")
	wantOffsets := []int{0, 1, 3}
	wantRunes := []rune{'a', 'π', '☃'}

	i := 0
	for off, r := range s.Runes() {
		if off != wantOffsets[i] || r != wantRunes[i] {
			t.Fatalf("pair %d = (%d, %q), want (%d, %q)", i, off, r, wantOffsets[i], wantRunes[i])
		}
		i++
	}
	if i != 3 {
		t.Fatalf("yielded %d runes", i)
	}

	for range s.Runes() {
		break
	}
	if !s.EqualString("aπ☃") {
		t.Errorf("borrowed iteration modified content: %q", s.String())
	}
}

// TestTakeBytes hands the storage over and leaves a usable empty container.
func TestTakeBytes(t *testing.T) {
	s := mustFrom(t, 8, "abc")
	v := s.TakeBytes()
	if !vec.EqualSlice(v, []byte("abc")) {
		t.Fatalf("taken bytes = %v", v)
	}
	if !s.IsEmpty() || s.Cap() != 8 {
		t.Fatalf("after TakeBytes: Len = %d, Cap = %d", s.Len(), s.Cap())
	}
	if err := s.PushStr("z"); err != nil || !s.EqualString("z") {
		t.Errorf("container unusable after TakeBytes: %q, %v", s.String(), err)
	}
}

// TestClone verifies the copy is independent of the original.
func TestClone(t *testing.T) {
	s := mustFrom(t, 8, "ab")
	c := s.Clone()
	if err := c.PushStr("c"); err != nil {
		t.Fatalf("PushStr on clone failed: %v", err)
	}
	if !s.EqualString("ab") || !c.EqualString("abc") {
		t.Errorf("original = %q, clone = %q", s.String(), c.String())
	}
}

// TestEqualCompare covers content equality and lexicographic order.
func TestEqualCompare(t *testing.T) {
	a := mustFrom(t, 4, "ab")
	b := mustFrom(t, 16, "ab")
	if !a.Equal(b) {
		t.Error("equal content under different capacities compares unequal")
	}
	if !a.EqualString("ab") || a.EqualString("ba") {
		t.Error("EqualString misreports")
	}

	var nilStr *String
	if !nilStr.Equal(New(4)) {
		t.Error("nil container does not equal an empty one")
	}

	c := mustFrom(t, 16, "b")
	if a.Compare(c) >= 0 || c.Compare(a) <= 0 || a.Compare(b) != 0 {
		t.Errorf("Compare order: ab/b = %d, b/ab = %d, ab/ab = %d",
			a.Compare(c), c.Compare(a), a.Compare(b))
	}
}

// TestFprintf renders through the standard formatting machinery.
func TestFprintf(t *testing.T) {
	s := New(32)
	if _, err := fmt.Fprintf(s, "x=%d y=%q", 42, "π"); err != nil {
		t.Fatalf("Fprintf failed: %v", err)
	}
	if !s.EqualString(`x=42 y="π"`) {
		t.Errorf("content = %q", s.String())
	}

	n, err := s.WriteRune('☃')
	if err != nil || n != 3 {
		t.Errorf("WriteRune = %d, %v", n, err)
	}
}

// TestBuildGreeting assembles text in two appends, the round shared by both
// engines when the capacity is generous.
func TestBuildGreeting(t *testing.T) {
	s := New(16)
	if err := s.PushStr("hello "); err != nil {
		t.Fatalf("first PushStr failed: %v", err)
	}
	if err := s.PushStr("world"); err != nil {
		t.Fatalf("second PushStr failed: %v", err)
	}
	if !s.EqualString("hello world") || s.Len() != 11 {
		t.Errorf("content = %q, Len = %d", s.String(), s.Len())
	}
}
