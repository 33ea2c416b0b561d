package perm_test

import (
	"testing"

	"github.com/katalvlaran/lanetsp/perm"
)

// BenchmarkDecodeInto_n13 measures the O(N²) decode at the original design size.
func BenchmarkDecodeInto_n13(b *testing.B) {
	ix, err := perm.NewIndexer(13)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]int, 13)
	count := ix.Count()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.DecodeUnchecked(uint64(i)%count, buf)
	}
}
