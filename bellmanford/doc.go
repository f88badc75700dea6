// Package bellmanford implements the engine's relaxation shortest path:
// the Bellman–Ford algorithm over a core.Graph, tolerant of negative
// edge weights and able to detect negative cycles.
//
// Overview:
//
//   - Compute runs one single-source, single-target query by making up
//     to V−1 relaxation passes over the graph's edge sequence in stored
//     order, exiting early as soon as a full pass improves nothing.
//   - A final scan over all edges follows the pass loop: any edge that
//     still improves a finite distance proves a negative cycle reachable
//     from the start, and the query reports NegativeCycle with no path.
//
// Result record:
//
//   - Structurally identical to package dijkstra's: Found with distance
//     and start..end path, or Unreachable, or NegativeCycle.
//   - VisitedOrder records the first time each vertex (other than the
//     start) is improved. The graph's edge insertion order therefore
//     fixes the visit order, making repeated runs identical.
//   - Elapsed covers the algorithm body only.
//
// Errors (sentinel):
//
//   - ErrNilGraph       – a nil *core.Graph was passed.
//   - ErrVertexNotFound – start or end does not name a graph vertex.
//
// Complexity:
//
//   - Time:  O(V · E) worst case; early convergence usually stops sooner.
//   - Space: O(V) for the distance, predecessor and first-seen maps.
package bellmanford
