// Package dijkstra implements the engine's priority-selection shortest
// path: Dijkstra's algorithm over a core.Graph with non-negative weights.
//
// Overview:
//
//   - Compute runs one single-source, single-target query: it settles
//     vertices in increasing distance from the start, stops early once
//     the end vertex settles, and returns one immutable route.Result.
//   - Weights are assumed non-negative. Behavior on negative weights is
//     undefined, not an error; use package bellmanford for graphs that
//     may carry negative weights.
//
// Determinism:
//
//   - When several unsettled vertices tie for the minimum tentative
//     distance, the smallest vertex ID (lexicographic order) settles
//     first. This tie-break is part of the contract: repeated runs over
//     the same graph and endpoints yield identical distance, path and
//     visit order.
//
// Result record:
//
//   - Found: end settled with finite distance; Path is rebuilt from
//     predecessor links, start..end inclusive.
//   - Unreachable: the frontier was exhausted before reaching end.
//   - VisitedOrder records settlement order and always excludes the
//     start vertex.
//   - Elapsed covers the algorithm body only, not validation or graph
//     construction.
//
// Errors (sentinel):
//
//   - ErrNilGraph       – a nil *core.Graph was passed.
//   - ErrVertexNotFound – start or end does not name a graph vertex.
//     Caller error, surfaced immediately; never reported as Unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted from the min-heap at most once.
//   - Each edge relaxation may push one entry (lazy decrease-key).
//   - Space: O(V + E) for the distance/predecessor maps and the heap.
package dijkstra
