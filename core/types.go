// Package core defines the Graph and Edge types plus sentinel errors.
// This file declares the value types; graph.go holds the constructor and
// all accessors.
package core

import "errors"

// Sentinel errors for core graph construction and queries.
var (
	// ErrEmptyVertexID indicates that a vertex or endpoint ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrUnknownVertex indicates that an edge references a vertex that was
	// never added to the graph. Construction fails fast on this.
	ErrUnknownVertex = errors.New("core: edge endpoint not found in graph")

	// ErrVertexNotFound indicates that a read accessor referenced a
	// non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is a weighted directed connection between two vertices.
//
// From and To are vertex IDs that must exist in the owning Graph.
// Weight is signed; the sign constraint depends on the algorithm run over
// the graph, not on the graph itself.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64
}
