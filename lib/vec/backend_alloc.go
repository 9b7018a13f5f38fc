//go:build !heapless

package vec

import "github.com/zeenix/mayheap/lib/buffer/heapbuf"

// storage binds every Vec in this build to the growable engine. The binding is
// a concrete embedded type, so engine calls dispatch statically.
type storage[T any] struct {
	heapbuf.Buffer[T]
}

func newStorage[T any](capacity int) storage[T] {
	return storage[T]{heapbuf.New[T](capacity)}
}
