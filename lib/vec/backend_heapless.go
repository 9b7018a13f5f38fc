//go:build heapless

package vec

import "github.com/zeenix/mayheap/lib/buffer/fixedbuf"

// storage binds every Vec in this build to the bounded engine. The binding is
// a concrete embedded type, so engine calls dispatch statically.
type storage[T any] struct {
	fixedbuf.Buffer[T]
}

func newStorage[T any](capacity int) storage[T] {
	return storage[T]{fixedbuf.New[T](capacity)}
}
