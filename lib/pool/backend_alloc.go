//go:build !heapless

package pool

// storage under the default build allocates slots on demand and leaves
// reclamation to the garbage collector; the construction capacity is advisory
// and get never fails.
type storage[T any] struct{}

func newStorage[T any](capacity int) storage[T] {
	return storage[T]{}
}

func (storage[T]) get() (*T, error) {
	return new(T), nil
}

func (storage[T]) put(slot *T) {
	// dropped on the floor for the collector
}
