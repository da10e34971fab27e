package search_test

import (
	"testing"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/search"
)

func benchmarkSearch(b *testing.B, alg search.Algorithm) {
	const n = 40
	def, err := citymap.Grid(n, n)
	if err != nil {
		b.Fatal(err)
	}
	g := citymap.MustBuild(def)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(alg, g, "0_0", "39_39"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAStar(b *testing.B)    { benchmarkSearch(b, search.AlgorithmAStar) }
func BenchmarkDijkstra(b *testing.B) { benchmarkSearch(b, search.AlgorithmDijkstra) }
func BenchmarkBFS(b *testing.B)      { benchmarkSearch(b, search.AlgorithmBFS) }
