package vec

import "testing"

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

// mustExtend seeds a container and fails the test on any error; every caller
// stays inside the container's capacity so this works under both engines.
func mustExtend[T any](t *testing.T, v *Vec[T], items ...T) {
	t.Helper()
	if err := v.Extend(items...); err != nil {
		t.Fatalf("seeding extend failed: %v", err)
	}
}

// TestNewEmpty checks the state of a freshly constructed container.
func TestNewEmpty(t *testing.T) {
	v := New[int](4)
	if !v.IsEmpty() || v.Len() != 0 {
		t.Errorf("new container not empty: Len = %d", v.Len())
	}
	if v.Cap() != 4 {
		t.Errorf("Cap = %d, want 4", v.Cap())
	}
	if v.IsFull() {
		t.Error("new container with room reports IsFull")
	}
	if _, ok := v.Pop(); ok {
		t.Error("Pop on empty container returned an element")
	}
	mustPanic(t, "negative capacity", func() { New[int](-1) })
}

// TestPushPopOrder seeds [7 1 2 3] and verifies pop order and the preserved
// prefix, the canonical last-in-first-out round.
func TestPushPopOrder(t *testing.T) {
	v, err := FromSlice(4, []int{7, 1, 2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	last, ok := v.Pop()
	if !ok || last != 3 {
		t.Fatalf("Pop = %d, %v; want 3, true", last, ok)
	}
	if v.Len() != 3 || !EqualSlice(v, []int{7, 1, 2}) {
		t.Fatalf("after Pop: %v", v)
	}

	for want := 2; want >= 0; want-- {
		got, ok := v.Pop()
		if !ok {
			t.Fatalf("Pop ran dry at %d", want)
		}
		_ = got
	}
	if !v.IsEmpty() {
		t.Errorf("container not empty after popping everything: %v", v)
	}
}

// TestGetSet covers indexed access and its bounds panics.
func TestGetSet(t *testing.T) {
	v := New[string](4)
	mustExtend(t, v, "a", "b", "c")

	if got := v.Get(1); got != "b" {
		t.Errorf("Get(1) = %q", got)
	}
	v.Set(1, "B")
	if got := v.Get(1); got != "B" {
		t.Errorf("Get(1) after Set = %q", got)
	}

	mustPanic(t, "Get(-1)", func() { v.Get(-1) })
	mustPanic(t, "Get(len)", func() { v.Get(3) })
	mustPanic(t, "Set out of range", func() { v.Set(7, "x") })
}

// TestInsert covers front, middle and append-position insertion.
func TestInsert(t *testing.T) {
	v := New[int](8)
	mustExtend(t, v, 1, 2, 4)

	if err := v.Insert(2, 3); err != nil {
		t.Fatalf("middle insert failed: %v", err)
	}
	if err := v.Insert(0, 0); err != nil {
		t.Fatalf("front insert failed: %v", err)
	}
	if err := v.Insert(v.Len(), 5); err != nil {
		t.Fatalf("append-position insert failed: %v", err)
	}
	if !EqualSlice(v, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("content = %v", v)
	}

	mustPanic(t, "insertion index past length", func() { _ = v.Insert(99, 9) })
	mustPanic(t, "negative insertion index", func() { _ = v.Insert(-1, 9) })
}

// TestRemove covers order-preserving removal.
func TestRemove(t *testing.T) {
	v := New[int](4)
	mustExtend(t, v, 0, 1, 2, 3)

	if got := v.Remove(1); got != 1 {
		t.Errorf("Remove(1) = %d", got)
	}
	if !EqualSlice(v, []int{0, 2, 3}) {
		t.Fatalf("content = %v", v)
	}
	if got := v.Remove(2); got != 3 {
		t.Errorf("Remove(last) = %d", got)
	}
	if !EqualSlice(v, []int{0, 2}) {
		t.Fatalf("content = %v", v)
	}
	mustPanic(t, "Remove out of range", func() { v.Remove(2) })
}

// TestSwapRemove covers constant-time removal and its reordering contract.
func TestSwapRemove(t *testing.T) {
	v := New[int](4)
	mustExtend(t, v, 1, 2, 3, 4)

	if got := v.SwapRemove(0); got != 1 {
		t.Errorf("SwapRemove(0) = %d", got)
	}
	if !EqualSlice(v, []int{4, 2, 3}) {
		t.Fatalf("content = %v", v)
	}
	if got := v.SwapRemove(2); got != 3 {
		t.Errorf("SwapRemove(last) = %d", got)
	}
	if !EqualSlice(v, []int{4, 2}) {
		t.Fatalf("content = %v", v)
	}
}

// TestRetain filters in place, keeping relative order.
func TestRetain(t *testing.T) {
	v := New[int](8)
	mustExtend(t, v, 1, 2, 3, 4, 5, 6, 7, 8)

	v.Retain(func(item int) bool { return item%2 == 0 })
	if !EqualSlice(v, []int{2, 4, 6, 8}) {
		t.Fatalf("content = %v", v)
	}

	v.Retain(func(int) bool { return false })
	if !v.IsEmpty() {
		t.Errorf("Retain(none) left %v", v)
	}
	v.Retain(func(int) bool { return true }) // empty container: no-op
}

// TestResize covers shrinking, growing with a fill value, and the no-op case,
// all inside the construction capacity.
func TestResize(t *testing.T) {
	v := New[int](8)
	mustExtend(t, v, 1, 2, 3, 4, 5)

	if err := v.Resize(2, 0); err != nil {
		t.Fatalf("shrink failed: %v", err)
	}
	if !EqualSlice(v, []int{1, 2}) {
		t.Fatalf("after shrink: %v", v)
	}

	if err := v.Resize(5, 9); err != nil {
		t.Fatalf("grow failed: %v", err)
	}
	if !EqualSlice(v, []int{1, 2, 9, 9, 9}) {
		t.Fatalf("after grow: %v", v)
	}

	if err := v.Resize(5, 0); err != nil {
		t.Fatalf("same-length resize failed: %v", err)
	}
	mustPanic(t, "negative resize", func() { _ = v.Resize(-1, 0) })
}

// TestTruncateClear covers tail release and full reset.
func TestTruncateClear(t *testing.T) {
	v := New[int](4)
	mustExtend(t, v, 1, 2, 3, 4)

	v.Truncate(100) // past the length: no-op
	if v.Len() != 4 {
		t.Fatalf("Len = %d after oversized truncate", v.Len())
	}
	v.Truncate(2)
	if !EqualSlice(v, []int{1, 2}) {
		t.Fatalf("after truncate: %v", v)
	}
	v.Clear()
	if !v.IsEmpty() || v.Cap() != 4 {
		t.Errorf("after clear: Len = %d, Cap = %d", v.Len(), v.Cap())
	}
}

// TestTake moves the content out and leaves a reusable empty container.
func TestTake(t *testing.T) {
	v := New[int](8)
	mustExtend(t, v, 1, 2, 3)

	out := v.Take()
	if len(out) != 3 || out[0] != 1 || out[2] != 3 {
		t.Fatalf("Take = %v", out)
	}
	if !v.IsEmpty() || v.Cap() != 8 {
		t.Errorf("after Take: Len = %d, Cap = %d", v.Len(), v.Cap())
	}

	// the returned slice is the caller's: container reuse must not touch it
	mustExtend(t, v, 9)
	if out[0] != 1 {
		t.Error("Take result shares storage with the container")
	}
}

// TestClone checks content equality and storage independence.
func TestClone(t *testing.T) {
	v := New[int](4)
	mustExtend(t, v, 1, 2, 3)

	c := v.Clone()
	if !Equal(v, c) {
		t.Fatalf("clone differs: %v vs %v", v, c)
	}
	if c.Cap() != v.Cap() {
		t.Errorf("clone Cap = %d, want %d", c.Cap(), v.Cap())
	}
	c.Set(0, 99)
	if v.Get(0) != 1 {
		t.Error("mutating the clone changed the original")
	}
}

// TestFromSliceCopies ensures construction copies rather than adopts the
// source slice.
func TestFromSliceCopies(t *testing.T) {
	src := []int{1, 2, 3}
	v, err := FromSlice(4, src)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	src[0] = 99
	if v.Get(0) != 1 {
		t.Error("container shares storage with the source slice")
	}
}

// TestStringFormat pins the debug rendering.
func TestStringFormat(t *testing.T) {
	v := New[int](4)
	mustExtend(t, v, 1, 2, 3)
	if got := v.String(); got != "[1 2 3]" {
		t.Errorf("String = %q", got)
	}
	if got := New[int](2).String(); got != "[]" {
		t.Errorf("empty String = %q", got)
	}
}
