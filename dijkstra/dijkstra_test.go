// Package dijkstra_test contains unit tests for the priority-selection
// shortest path: validation errors, the canonical demo scenario,
// unreachable targets, deterministic tie-breaking, and visit-order
// properties.
package dijkstra_test

import (
	"testing"

	"github.com/pathviz/engine/core"
	"github.com/pathviz/engine/dijkstra" // package under test
	"github.com/pathviz/engine/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeSpec is a compact (from, to, weight) triple for test graphs.
type edgeSpec struct {
	from, to string
	weight   int64
}

// buildGraph registers ids and applies edges in order.
func buildGraph(t *testing.T, ids []string, edges []edgeSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.weight))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: invalid inputs are surfaced as errors, never as results.
// ------------------------------------------------------------------------

func TestCompute_NilGraph(t *testing.T) {
	_, err := dijkstra.Compute(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestCompute_StartNotFound(t *testing.T) {
	g := core.DemoGraph()
	_, err := dijkstra.Compute(g, "Z", "C")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestCompute_EndNotFound(t *testing.T) {
	g := core.DemoGraph()
	_, err := dijkstra.Compute(g, "A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 2. Canonical scenario: the demo graph, A to C.
// ------------------------------------------------------------------------

func TestCompute_DemoGraph_AtoC(t *testing.T) {
	res, err := dijkstra.Compute(core.DemoGraph(), "A", "C")
	require.NoError(t, err)

	// Shortest route is A→B(4)→C(3), total 7; A→E→B→C costs 12.
	assert.Equal(t, route.Found, res.Kind)
	assert.Equal(t, int64(7), res.Distance)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, "Dijkstra", res.Algorithm)

	// Settlement order with the ID tie-break: E(2), B(4), D(5), C(7).
	assert.Equal(t, []string{"E", "B", "D", "C"}, res.VisitedOrder)
}

// ------------------------------------------------------------------------
// 3. Unreachable target.
// ------------------------------------------------------------------------

func TestCompute_Unreachable(t *testing.T) {
	// Single edge X→Y; nothing leads back from Y to X.
	g := buildGraph(t, []string{"X", "Y"}, []edgeSpec{{"X", "Y", 5}})

	res, err := dijkstra.Compute(g, "Y", "X")
	require.NoError(t, err)

	assert.Equal(t, route.Unreachable, res.Kind)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.VisitedOrder)
	assert.False(t, res.ContainsEdge("X", "Y"))
}

// ------------------------------------------------------------------------
// 4. Determinism: equal-distance ties settle by smallest vertex ID, so
//    repeated runs are identical.
// ------------------------------------------------------------------------

func TestCompute_TieBreakBySmallestID(t *testing.T) {
	// B and C both sit at distance 1; B must settle first.
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[]edgeSpec{
			{"A", "B", 1},
			{"A", "C", 1},
			{"B", "D", 1},
			{"C", "D", 1},
		},
	)

	first, err := dijkstra.Compute(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Distance)
	assert.Equal(t, []string{"A", "B", "D"}, first.Path)
	assert.Equal(t, []string{"B", "C", "D"}, first.VisitedOrder)

	// Stability across repeated runs on the tie-inducing graph.
	for i := 0; i < 25; i++ {
		res, err := dijkstra.Compute(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, first.Distance, res.Distance)
		assert.Equal(t, first.Path, res.Path)
		assert.Equal(t, first.VisitedOrder, res.VisitedOrder)
	}
}

// ------------------------------------------------------------------------
// 5. Structural properties of the result record.
// ------------------------------------------------------------------------

func TestCompute_VisitedOrderProperties(t *testing.T) {
	res, err := dijkstra.Compute(core.DemoGraph(), "A", "C")
	require.NoError(t, err)

	// Never contains the start, never contains duplicates.
	seen := make(map[string]bool, len(res.VisitedOrder))
	for _, id := range res.VisitedOrder {
		assert.NotEqual(t, "A", id)
		assert.False(t, seen[id], "duplicate %q in visit order", id)
		seen[id] = true
	}

	// Path endpoints are the query endpoints.
	require.NotEmpty(t, res.Path)
	assert.Equal(t, "A", res.Path[0])
	assert.Equal(t, "C", res.Path[len(res.Path)-1])
}

func TestCompute_StartEqualsEnd(t *testing.T) {
	res, err := dijkstra.Compute(core.DemoGraph(), "A", "A")
	require.NoError(t, err)

	// The start settles immediately at distance zero.
	assert.Equal(t, route.Found, res.Kind)
	assert.Zero(t, res.Distance)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Empty(t, res.VisitedOrder)
}

func TestCompute_ParallelEdgesAllConsidered(t *testing.T) {
	// Two parallel A→B edges; the cheaper one must win.
	g := buildGraph(t, []string{"A", "B"}, []edgeSpec{
		{"A", "B", 5},
		{"A", "B", 2},
	})

	res, err := dijkstra.Compute(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Distance)
	assert.Equal(t, []string{"A", "B"}, res.Path)
}

// TestCompute_GraphNotMutated confirms the query leaves the snapshot
// untouched so one Graph may serve many queries.
func TestCompute_GraphNotMutated(t *testing.T) {
	g := core.DemoGraph()
	before := g.Edges()

	_, err := dijkstra.Compute(g, "A", "C")
	require.NoError(t, err)

	assert.Equal(t, before, g.Edges())
	assert.Equal(t, 5, g.VertexCount())
}
