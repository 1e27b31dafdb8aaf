package filter_test

import (
	"testing"

	"github.com/rag-nar1/sized-bloom/filter"
)

// BenchmarkHash measures probe derivation per hash family
func BenchmarkHash(b *testing.B) {
	data := []byte("performance test data")
	for _, name := range filter.HashNames() {
		h, _ := filter.LookupHash(name)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			var sink uint64
			for i := 0; i < b.N; i++ {
				for pos := range h(data, 958, 6) {
					sink += pos
				}
			}
			_ = sink
		})
	}
}
