package vec

import "testing"

// TestEqual covers content equality across capacities and inequality cases.
func TestEqual(t *testing.T) {
	a, err := FromSlice(4, []int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromSlice(8, []int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}

	if !Equal(a, b) {
		t.Error("equal content with different capacities compared unequal")
	}

	b.Set(2, 9)
	if Equal(a, b) {
		t.Error("different content compared equal")
	}

	short, _ := FromSlice(4, []int{1, 2})
	if Equal(a, short) {
		t.Error("different lengths compared equal")
	}
}

// TestEqualNil treats nil and empty containers as equal.
func TestEqualNil(t *testing.T) {
	var a, b *Vec[int]
	if !Equal(a, b) {
		t.Error("nil vs nil")
	}
	if !Equal(a, New[int](0)) {
		t.Error("nil vs empty")
	}
	if Equal(a, mustFrom(t, 2, []int{1})) {
		t.Error("nil vs non-empty")
	}
}

// TestEqualFunc compares containers of different element types.
func TestEqualFunc(t *testing.T) {
	a := New[int](4)
	mustExtend(t, a, 1, 2, 3)
	b := New[int64](4)
	if err := b.Extend(1, 2, 3); err != nil {
		t.Fatal(err)
	}

	eq := func(x int, y int64) bool { return int64(x) == y }
	if !EqualFunc(a, b, eq) {
		t.Error("cross-type equal content compared unequal")
	}
	b.Set(0, 7)
	if EqualFunc(a, b, eq) {
		t.Error("cross-type different content compared equal")
	}
}

// TestEqualSlice compares a container against plain slices.
func TestEqualSlice(t *testing.T) {
	v := New[int](4)
	mustExtend(t, v, 1, 2, 3)

	if !EqualSlice(v, []int{1, 2, 3}) {
		t.Error("content vs equal literal")
	}
	if EqualSlice(v, []int{1, 2}) {
		t.Error("content vs shorter literal")
	}
	if !EqualSlice(New[int](2), nil) {
		t.Error("empty container vs nil slice")
	}
}

// TestStartsWithEndsWith covers the affix predicates, including the empty and
// oversized affix edges.
func TestStartsWithEndsWith(t *testing.T) {
	v := New[int](4)
	mustExtend(t, v, 1, 2, 3, 4)

	for _, tc := range []struct {
		name   string
		affix  []int
		starts bool
		ends   bool
	}{
		{"empty", nil, true, true},
		{"full", []int{1, 2, 3, 4}, true, true},
		{"prefix", []int{1, 2}, true, false},
		{"suffix", []int{3, 4}, false, true},
		{"mismatch", []int{2}, false, false},
		{"oversized", []int{0, 1, 2, 3, 4}, false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := StartsWith(v, tc.affix); got != tc.starts {
				t.Errorf("StartsWith(%v) = %v", tc.affix, got)
			}
			if got := EndsWith(v, tc.affix); got != tc.ends {
				t.Errorf("EndsWith(%v) = %v", tc.affix, got)
			}
		})
	}
}

func mustFrom(t *testing.T, capacity int, items []int) *Vec[int] {
	t.Helper()
	v, err := FromSlice(capacity, items)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return v
}
