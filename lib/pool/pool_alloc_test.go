//go:build !heapless

package pool

import "testing"

// TestAllocBeyondCapacity allocates far past the advisory capacity, which the
// default build serves from the heap without complaint.
func TestAllocBeyondCapacity(t *testing.T) {
	p := New[int](2)
	boxes := make([]*Box[int], 10)
	for i := range boxes {
		b, err := p.Alloc(i)
		if err != nil {
			t.Fatalf("Alloc %d failed: %v", i, err)
		}
		boxes[i] = b
	}
	for i, b := range boxes {
		if *b.Value() != i {
			t.Errorf("box %d = %d", i, *b.Value())
		}
		b.Free()
	}
}
