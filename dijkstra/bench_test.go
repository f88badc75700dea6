package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/pathviz/engine/core"
	"github.com/pathviz/engine/dijkstra"
)

// chainGraph builds a linear chain v0→v1→...→vN with unit weights.
func chainGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i <= n; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%04d", i))
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%04d", i), fmt.Sprintf("v%04d", i+1), 1)
	}

	return g
}

// BenchmarkCompute_Chain measures one full-length query on a chain.
func BenchmarkCompute_Chain(b *testing.B) {
	const N = 1000
	g := chainGraph(N)
	end := fmt.Sprintf("v%04d", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Compute(g, "v0000", end)
	}
}

// BenchmarkCompute_Demo measures the visualizer-sized demo graph, the
// workload the engine actually targets.
func BenchmarkCompute_Demo(b *testing.B) {
	g := core.DemoGraph()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Compute(g, "A", "C")
	}
}
