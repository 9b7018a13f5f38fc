package testing

import (
	"testing"

	"github.com/zeenix/mayheap/lib/buffer"
)

// RunBufferBenchmarks runs the shared benchmark workloads against one buffer
// implementation. Workloads stay inside a fixed capacity so the two engines do
// comparable work and the bounded engine never overflows.
func RunBufferBenchmarks(b *testing.B, name string, factory buffer.Factory[int]) {
	b.Run(name, func(b *testing.B) {
		b.Run("Append", func(b *testing.B) {
			benchmarkAppend(b, factory)
		})

		b.Run("AppendSlice", func(b *testing.B) {
			benchmarkAppendSlice(b, factory)
		})

		b.Run("Scan", func(b *testing.B) {
			benchmarkScan(b, factory)
		})

		b.Run("ClearRefill", func(b *testing.B) {
			benchmarkClearRefill(b, factory)
		})
	})
}

func benchmarkAppend(b *testing.B, factory buffer.Factory[int]) {
	buf := factory(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if buf.Full() {
			buf.Clear()
		}
		_ = buf.Append(i)
	}
}

func benchmarkAppendSlice(b *testing.B, factory buffer.Factory[int]) {
	buf := factory(1024)
	chunk := make([]int, 64)
	for i := range chunk {
		chunk[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if buf.Len()+len(chunk) > 1024 {
			buf.Clear()
		}
		_ = buf.AppendSlice(chunk)
	}
}

func benchmarkScan(b *testing.B, factory buffer.Factory[int]) {
	buf := factory(1024)
	for i := 0; i < 1024; i++ {
		_ = buf.Append(i)
	}
	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		for _, v := range buf.Slice() {
			sum += v
		}
	}
	_ = sum
}

func benchmarkClearRefill(b *testing.B, factory buffer.Factory[int]) {
	buf := factory(256)
	chunk := make([]int, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		_ = buf.AppendSlice(chunk)
	}
}
