package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/pathviz/engine/core"
	"github.com/pathviz/engine/route"
)

// Compute runs Dijkstra's algorithm on g from startID to endID and
// returns one immutable route.Result.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. startID must name a graph vertex (ErrVertexNotFound).
//  3. endID must name a graph vertex (ErrVertexNotFound).
//
// Weights are assumed non-negative; Compute does not scan for negative
// weights and its behavior on them is undefined.
//
// The returned record is Found when end settles with a finite distance,
// Unreachable otherwise. Result.Elapsed covers the algorithm body only.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Compute(g *core.Graph, startID, endID string) (*route.Result, error) {
	// 1) Validate the graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate both endpoints exist. Missing endpoints are a caller
	//    error, never an Unreachable result.
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, startID)
	}
	if !g.HasVertex(endID) {
		return nil, fmt.Errorf("%w: end %q", ErrVertexNotFound, endID)
	}

	// 3) Allocate all working state locally: nothing is shared between
	//    queries and the graph itself is never written.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		start:   startID,
		end:     endID,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		settled: make(map[string]bool, V),
		visited: make([]string, 0, V),
		pq:      make(minHeap, 0, V),
	}

	// 4) Time the algorithm body only, excluding validation above.
	began := time.Now()
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	elapsed := time.Since(began)

	// 5) Package the uniform result record.
	if r.dist[endID] == math.MaxInt64 {
		return route.NewUnreachable(Algorithm, r.visited, elapsed), nil
	}
	path := route.BuildPath(r.prev, startID, endID)

	return route.NewFound(Algorithm, r.dist[endID], path, r.visited, elapsed), nil
}

// runner holds the mutable state for a single Compute execution.
type runner struct {
	g       *core.Graph       // the input graph; read-only during the query
	start   string            // source vertex ID
	end     string            // target vertex ID; settling it ends the loop
	dist    map[string]int64  // vertex ID → best known distance from start
	prev    map[string]string // vertex ID → predecessor on the shortest path
	settled map[string]bool   // vertex ID → distance finalized
	visited []string          // settlement order, start excluded
	pq      minHeap           // lazy-decrease-key priority queue
}

// init seeds distances at +∞ (math.MaxInt64), predecessors unset, and
// pushes the start vertex at distance zero.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, heapItem{id: r.start, dist: 0})
}

// process settles vertices in (distance, ID) order until the heap is
// exhausted or the end vertex settles.
//
// Vertices left at +∞ are never pushed, so an empty heap is exactly the
// "minimum remaining distance is infinite" early termination.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(heapItem)
		u := item.id

		// Skip stale entries left behind by lazy decrease-key.
		if r.settled[u] {
			continue
		}
		r.settled[u] = true

		// Settlement order excludes the start vertex.
		if u != r.start {
			r.visited = append(r.visited, u)
		}

		// Early exit: the target's distance is final once it settles.
		if u == r.end {
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax scans the outgoing edges of u in insertion order and improves
// any neighbor whose tentative distance beats its current one.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range neighbors {
		candidate := du + e.Weight
		// Strictly-less keeps first-found predecessors on equal-cost routes.
		if candidate >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		heap.Push(&r.pq, heapItem{id: e.To, dist: candidate})
	}

	return nil
}
