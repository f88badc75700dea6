package core

import (
	"fmt"
	"sort"
)

// Graph is a directed weighted multigraph over string vertex IDs.
//
// Vertices are registered explicitly with AddVertex; AddEdge refuses
// endpoints that were never registered. Once handed to an algorithm the
// Graph is treated as an immutable snapshot: the algorithm packages only
// call the read accessors below.
type Graph struct {
	vertices  map[string]struct{} // vertex membership
	edges     []Edge              // all edges, insertion order
	adjacency map[string][]Edge   // outgoing edges per vertex, insertion order
}

// NewGraph returns an empty Graph ready for construction.
//
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
}

// AddVertex registers id in the graph. Adding an existing vertex is a
// no-op. Returns ErrEmptyVertexID if id is empty.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge appends a directed edge from→to with the given weight.
//
// Both endpoints must already be registered via AddVertex; an unknown
// endpoint yields ErrUnknownVertex (wrapped with the offending ID).
// Parallel edges between the same pair are permitted and every one of
// them is considered by the algorithms.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}

	e := Edge{From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)

	return nil
}

// HasVertex reports whether id is registered in the graph.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// The returned slice is a fresh copy.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge in insertion order. The returned slice is a
// fresh copy; mutating it does not affect the graph.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the outgoing edges of id in insertion order.
// Returns ErrVertexNotFound if id is not registered.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	adj := g.adjacency[id]
	out := make([]Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// DemoGraph builds the engine's canonical five-vertex demo topology:
//
//	A→B(4), A→E(2), B→C(3), B→D(1), C→D(2), D→E(3), E→B(7)
//
// The shortest A→C route is A→B→C with total cost 7.
func DemoGraph() *Graph {
	g := NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "E", 2)
	_ = g.AddEdge("B", "C", 3)
	_ = g.AddEdge("B", "D", 1)
	_ = g.AddEdge("C", "D", 2)
	_ = g.AddEdge("D", "E", 3)
	_ = g.AddEdge("E", "B", 7)

	return g
}
