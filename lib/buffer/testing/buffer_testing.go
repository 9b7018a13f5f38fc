package testing

import (
	"errors"
	"testing"

	"github.com/zeenix/mayheap"
	"github.com/zeenix/mayheap/lib/buffer"
)

// RunBufferTests runs the full engine contract suite against one buffer
// implementation.
func RunBufferTests(t *testing.T, name string, factory buffer.Factory[int], growable bool) {
	t.Run(name, func(t *testing.T) {
		t.Run("Construction", func(t *testing.T) {
			testConstruction(t, factory)
		})

		t.Run("Append", func(t *testing.T) {
			testAppend(t, factory)
		})

		t.Run("AppendAtCapacity", func(t *testing.T) {
			testAppendAtCapacity(t, factory, growable)
		})

		t.Run("AppendSlice", func(t *testing.T) {
			testAppendSlice(t, factory)
		})

		t.Run("AppendSliceAtomic", func(t *testing.T) {
			testAppendSliceAtomic(t, factory, growable)
		})

		t.Run("Truncate", func(t *testing.T) {
			testTruncate(t, factory)
		})

		t.Run("Clear", func(t *testing.T) {
			testClear(t, factory)
		})

		t.Run("SliceWindow", func(t *testing.T) {
			testSliceWindow(t, factory)
		})

		t.Run("ReleaseOnTruncate", func(t *testing.T) {
			testReleaseOnTruncate(t, factory)
		})

		t.Run("InvalidArguments", func(t *testing.T) {
			testInvalidArguments(t, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// fill appends 0..n-1 and fails the test on any error.
func fill(t testing.TB, buf buffer.Buffer[int], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := buf.Append(i); err != nil {
			t.Fatalf("fill: append %d failed: %v", i, err)
		}
	}
}

// wantElements compares the buffer window against the expected content.
func wantElements(t testing.TB, buf buffer.Buffer[int], want []int) {
	t.Helper()
	got := buf.Slice()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (content %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d = %d, want %d (content %v)", i, got[i], want[i], got)
		}
	}
}

// mustPanic fails the test unless fn panics.
func mustPanic(t testing.TB, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", what)
		}
	}()
	fn()
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testConstruction(t *testing.T, factory buffer.Factory[int]) {
	for _, capacity := range []int{0, 1, 8, 1024} {
		buf := factory(capacity)
		if buf.Len() != 0 {
			t.Errorf("capacity %d: new buffer has Len %d", capacity, buf.Len())
		}
		if buf.Cap() != capacity {
			t.Errorf("capacity %d: Cap = %d", capacity, buf.Cap())
		}
		if got, want := buf.Full(), capacity == 0; got != want {
			t.Errorf("capacity %d: Full = %v, want %v", capacity, got, want)
		}
		if len(buf.Slice()) != 0 {
			t.Errorf("capacity %d: new buffer has a non-empty window", capacity)
		}
	}
}

func testAppend(t *testing.T, factory buffer.Factory[int]) {
	buf := factory(8)
	fill(t, buf, 5)
	if buf.Len() != 5 {
		t.Fatalf("Len = %d after 5 appends", buf.Len())
	}
	wantElements(t, buf, []int{0, 1, 2, 3, 4})
	if buf.Full() {
		t.Error("buffer with free room reports Full")
	}
}

func testAppendAtCapacity(t *testing.T, factory buffer.Factory[int], growable bool) {
	buf := factory(4)
	fill(t, buf, 4)
	if !buf.Full() {
		t.Fatal("buffer at capacity does not report Full")
	}

	err := buf.Append(99)
	if growable {
		if err != nil {
			t.Fatalf("growable append at capacity failed: %v", err)
		}
		if buf.Len() != 5 || buf.Cap() < 5 {
			t.Errorf("after growth: Len = %d, Cap = %d", buf.Len(), buf.Cap())
		}
		wantElements(t, buf, []int{0, 1, 2, 3, 99})
		return
	}

	if !errors.Is(err, mayheap.ErrBufferOverflow) {
		t.Fatalf("bounded append at capacity: err = %v, want ErrBufferOverflow", err)
	}
	if buf.Len() != 4 || buf.Cap() != 4 {
		t.Errorf("failed append changed the buffer: Len = %d, Cap = %d", buf.Len(), buf.Cap())
	}
	wantElements(t, buf, []int{0, 1, 2, 3})
}

func testAppendSlice(t *testing.T, factory buffer.Factory[int]) {
	buf := factory(6)
	if err := buf.AppendSlice([]int{1, 2, 3}); err != nil {
		t.Fatalf("first bulk append failed: %v", err)
	}
	if err := buf.AppendSlice([]int{4, 5}); err != nil {
		t.Fatalf("second bulk append failed: %v", err)
	}
	wantElements(t, buf, []int{1, 2, 3, 4, 5})

	// empty and nil bulk appends are no-ops, even on a full buffer
	if err := buf.AppendSlice([]int{6}); err != nil {
		t.Fatalf("filling append failed: %v", err)
	}
	if err := buf.AppendSlice(nil); err != nil {
		t.Errorf("nil bulk append on a full buffer failed: %v", err)
	}
	if err := buf.AppendSlice([]int{}); err != nil {
		t.Errorf("empty bulk append on a full buffer failed: %v", err)
	}
	if buf.Len() != 6 {
		t.Errorf("Len = %d after no-op appends", buf.Len())
	}
}

func testAppendSliceAtomic(t *testing.T, factory buffer.Factory[int], growable bool) {
	buf := factory(4)
	fill(t, buf, 2)

	err := buf.AppendSlice([]int{10, 20, 30})
	if growable {
		if err != nil {
			t.Fatalf("growable bulk append failed: %v", err)
		}
		wantElements(t, buf, []int{0, 1, 10, 20, 30})
		return
	}

	if !errors.Is(err, mayheap.ErrBufferOverflow) {
		t.Fatalf("oversized bulk append: err = %v, want ErrBufferOverflow", err)
	}
	// nothing may have been copied before the ceiling check
	wantElements(t, buf, []int{0, 1})

	// an exactly-fitting bulk append still works afterwards
	if err := buf.AppendSlice([]int{10, 20}); err != nil {
		t.Fatalf("fitting bulk append failed after a rejected one: %v", err)
	}
	wantElements(t, buf, []int{0, 1, 10, 20})
}

func testTruncate(t *testing.T, factory buffer.Factory[int]) {
	buf := factory(8)
	fill(t, buf, 6)

	buf.Truncate(3)
	wantElements(t, buf, []int{0, 1, 2})
	if buf.Cap() != 8 {
		t.Errorf("truncate changed Cap to %d", buf.Cap())
	}

	// at or past the length: no-op
	buf.Truncate(3)
	buf.Truncate(100)
	wantElements(t, buf, []int{0, 1, 2})

	buf.Truncate(0)
	if buf.Len() != 0 {
		t.Errorf("Truncate(0) left Len = %d", buf.Len())
	}
}

func testClear(t *testing.T, factory buffer.Factory[int]) {
	buf := factory(4)
	fill(t, buf, 4)

	buf.Clear()
	if buf.Len() != 0 {
		t.Fatalf("Len = %d after Clear", buf.Len())
	}
	if buf.Cap() != 4 {
		t.Errorf("Clear changed Cap to %d", buf.Cap())
	}

	// the buffer is fully reusable
	fill(t, buf, 4)
	wantElements(t, buf, []int{0, 1, 2, 3})
}

func testSliceWindow(t *testing.T, factory buffer.Factory[int]) {
	buf := factory(4)
	fill(t, buf, 3)

	w := buf.Slice()
	if len(w) != 3 {
		t.Fatalf("window length = %d", len(w))
	}
	w[1] = 42
	if buf.Slice()[1] != 42 {
		t.Error("write through the window is not visible to the buffer")
	}
}

func testReleaseOnTruncate(t *testing.T, factory buffer.Factory[int]) {
	buf := factory(4)
	fill(t, buf, 4)

	// Truncation never moves storage, so a previously captured window still
	// views the backing array and must observe the vacated slots zeroed.
	w := buf.Slice()
	buf.Truncate(2)
	if w[2] != 0 || w[3] != 0 {
		t.Errorf("vacated slots not released: %v", w[2:4])
	}

	fill(t, buf, 1) // appends 0; buffer is [0 1 0]
	buf.Clear()
	if w[0] != 0 || w[1] != 0 {
		t.Errorf("Clear left slot contents behind: %v", w[:2])
	}
}

func testInvalidArguments(t *testing.T, factory buffer.Factory[int]) {
	mustPanic(t, "negative capacity", func() {
		factory(-1)
	})
	mustPanic(t, "negative truncation length", func() {
		buf := factory(2)
		buf.Truncate(-1)
	})
}
