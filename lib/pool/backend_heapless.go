//go:build heapless

package pool

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/zeenix/mayheap"
)

// storage under -tags heapless is a fixed set of slots allocated once at
// construction, recycled through a lock-free MPMC freelist. A drained
// freelist fails, it never allocates.
type storage[T any] struct {
	free *xsync.MPMCQueueOf[*T]
}

func newStorage[T any](capacity int) storage[T] {
	if capacity == 0 {
		// the queue cannot be empty-capacity; a nil freelist always overflows
		return storage[T]{}
	}
	free := xsync.NewMPMCQueueOf[*T](capacity)
	for i := 0; i < capacity; i++ {
		free.TryEnqueue(new(T))
	}
	return storage[T]{free: free}
}

func (s storage[T]) get() (*T, error) {
	if s.free == nil {
		return nil, mayheap.ErrBufferOverflow
	}
	slot, ok := s.free.TryDequeue()
	if !ok {
		return nil, mayheap.ErrBufferOverflow
	}
	return slot, nil
}

func (s storage[T]) put(slot *T) {
	// the queue holds every slot ever made and Free is idempotent, so the
	// enqueue cannot fail
	s.free.TryEnqueue(slot)
}
