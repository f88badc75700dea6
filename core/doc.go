// Package core provides the fundamental in-memory Graph for the
// shortest-path engine: a finite set of string vertex IDs plus an ordered
// sequence of weighted directed edges.
//
// Overview:
//
//   - The Graph is a directed multigraph: several edges may connect the
//     same ordered pair of vertices, and every one of them participates in
//     shortest-path computations.
//   - Edge weights are signed int64. The relaxation algorithm
//     (bellmanford) accepts negative weights; the priority-selection
//     algorithm (dijkstra) assumes non-negative weights and its behavior
//     on negative weights is undefined, not an error.
//   - Edges are stored in insertion order, and Neighbors returns outgoing
//     edges in that same order. The stored order matters only for the
//     relaxation algorithm's first-improvement visit order.
//   - Construction validates endpoints eagerly: AddEdge rejects any edge
//     naming a vertex that was never added (ErrUnknownVertex). Violating
//     this is a construction failure, never a silent runtime state.
//
// Concurrency:
//
//   - The Graph has no mutation API beyond construction and holds no
//     locks. A fully constructed Graph is read-only to the algorithm
//     packages, so one instance may be shared across concurrent queries;
//     construction itself is single-goroutine.
//
// Errors (sentinel):
//
//   - ErrEmptyVertexID  – a vertex or edge endpoint ID is the empty string.
//   - ErrUnknownVertex  – an edge endpoint was never added as a vertex.
//   - ErrVertexNotFound – a read accessor referenced a missing vertex.
//
// Complexity:
//
//   - AddVertex / AddEdge / HasVertex: O(1) amortized.
//   - Vertices: O(V log V) (sorted copy). Edges / Neighbors: O(result).
package core
