// Package bellmanford declares the sentinel errors for the relaxation
// shortest-path implementation.
package bellmanford

import "errors"

// Algorithm is the display name carried in route.Result.Algorithm.
const Algorithm = "Bellman-Ford"

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the start or end ID does not name
	// a vertex of the graph. This is a caller precondition violation and
	// is never silently reported as an Unreachable result.
	ErrVertexNotFound = errors.New("bellmanford: vertex not found in graph")
)
