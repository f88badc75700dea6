package bellmanford

import (
	"fmt"
	"math"
	"time"

	"github.com/pathviz/engine/core"
	"github.com/pathviz/engine/route"
)

// Compute runs the Bellman–Ford algorithm on g from startID to endID and
// returns one immutable route.Result.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. startID must name a graph vertex (ErrVertexNotFound).
//  3. endID must name a graph vertex (ErrVertexNotFound).
//
// Negative edge weights are permitted. When a negative-weight cycle is
// reachable from start the record is NegativeCycle and no path is
// reconstructed; otherwise the record is Found or Unreachable with the
// same shape package dijkstra produces.
//
// Complexity:
//
//   - Time:  O(V · E) worst case
//   - Space: O(V)
func Compute(g *core.Graph, startID, endID string) (*route.Result, error) {
	// 1) Validate the graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate both endpoints exist.
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, startID)
	}
	if !g.HasVertex(endID) {
		return nil, fmt.Errorf("%w: end %q", ErrVertexNotFound, endID)
	}

	// 3) Snapshot the inputs the passes iterate over. Edges come back in
	//    insertion order, which fixes the first-improvement visit order.
	vertices := g.Vertices()
	edges := g.Edges()
	V := len(vertices)

	// 4) All working state is local to the call.
	dist := make(map[string]int64, V)
	prev := make(map[string]string, V)
	seen := make(map[string]bool, V) // already recorded in visit order
	visited := make([]string, 0, V)

	began := time.Now()

	for _, v := range vertices {
		dist[v] = math.MaxInt64
		prev[v] = ""
	}
	dist[startID] = 0

	// 5) Up to V−1 relaxation passes over every edge in stored order.
	//    A pass that improves nothing proves convergence; stop early.
	for pass := 0; pass < V-1; pass++ {
		improved := false
		for _, e := range edges {
			if dist[e.From] == math.MaxInt64 {
				continue
			}
			candidate := dist[e.From] + e.Weight
			if candidate >= dist[e.To] {
				continue
			}
			dist[e.To] = candidate
			prev[e.To] = e.From
			improved = true

			// Record each vertex once, on its first improvement.
			if e.To != startID && !seen[e.To] {
				seen[e.To] = true
				visited = append(visited, e.To)
			}
		}
		if !improved {
			break
		}
	}

	// 6) One more full scan: any remaining improvement means a negative
	//    cycle reachable from start. Short-circuits path reconstruction.
	for _, e := range edges {
		if dist[e.From] == math.MaxInt64 {
			continue
		}
		if dist[e.From]+e.Weight < dist[e.To] {
			return route.NewNegativeCycle(Algorithm, time.Since(began)), nil
		}
	}

	elapsed := time.Since(began)

	// 7) Package the uniform result record.
	if dist[endID] == math.MaxInt64 {
		return route.NewUnreachable(Algorithm, visited, elapsed), nil
	}
	path := route.BuildPath(prev, startID, endID)

	return route.NewFound(Algorithm, dist[endID], path, visited, elapsed), nil
}
