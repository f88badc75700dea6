// Package dijkstra declares the sentinel errors and the priority queue
// used by the priority-selection shortest-path implementation.
package dijkstra

import "errors"

// Algorithm is the display name carried in route.Result.Algorithm.
const Algorithm = "Dijkstra"

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the start or end ID does not name
	// a vertex of the graph. This is a caller precondition violation and
	// is never silently reported as an Unreachable result.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")
)

// heapItem pairs a vertex ID with the tentative distance it was pushed at.
type heapItem struct {
	id   string // vertex ID
	dist int64  // tentative distance from start at push time
}

// minHeap is a priority queue of heapItem ordered by distance ascending,
// breaking ties by vertex ID ascending. The ID tie-break is what makes
// settlement order deterministic when distances collide.
//
// Lazy decrease-key: improving a vertex pushes a fresh entry; stale
// entries are skipped on pop once the vertex has settled.
type minHeap []heapItem

func (h minHeap) Len() int { return len(h) }

func (h minHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].id < h[j].id
}

func (h minHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by container/heap.
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }

// Pop removes and returns the minimum element; called by container/heap.
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
