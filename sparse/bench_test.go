// Package sparse_test provides benchmarks for the hot vector paths, using
// deterministic random fills.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/netlp/sparse"
)

var benchSizes = []int{1 << 10, 1 << 14}

// sinks to defeat dead-code elimination
var (
	sinkP *sparse.Packed
	sinkN int
)

func fillRandom(b *testing.B, v *sparse.Indexed, nnz int, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for k := 0; k < nnz; k++ {
		if err := v.Add(rng.Intn(v.Capacity()), rng.Float64()+0.5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIndexed_AddClear(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v, _ := sparse.NewIndexed(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fillRandom(b, v, n/16, 1337)
				sinkN = v.NumElements()
				v.Clear()
			}
		})
	}
}

func BenchmarkIndexed_ScanAndPack(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				v, _ := sparse.NewIndexed(n)
				fillRandom(b, v, n/8, 4242)
				b.StartTimer()
				sinkP = v.ScanAndPack(0, n)
			}
		})
	}
}
