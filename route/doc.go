// Package route defines the uniform result record shared by the engine's
// shortest-path algorithms, plus path reconstruction from predecessor
// links and the per-edge path-membership query used for highlighting.
//
// Overview:
//
//   - Result is a tagged outcome, one of Found, Unreachable or
//     NegativeCycle. The tag (Result.Kind) decides which fields are
//     meaningful, so callers never read a Distance out of a
//     NegativeCycle record by mistake.
//   - Both algorithm packages (dijkstra, bellmanford) produce the same
//     record shape, which is what makes their outputs directly
//     comparable: distance, path, visit order and wall-clock timing sit
//     in identical fields.
//   - Results are immutable by convention: each algorithm invocation
//     allocates a fresh record, and no function in this module mutates a
//     Result after construction.
//
// Path reconstruction:
//
//   - BuildPath walks a predecessor map backward from the end vertex and
//     reverses the collected chain. A valid walk terminates on the start
//     vertex; anything else yields an empty path (the Unreachable case).
//     Reconstruction is never attempted after a negative cycle was
//     detected.
//
// Membership query:
//
//   - (*Result).ContainsEdge reports whether a directed edge (from, to)
//     lies on the reported path, i.e. the two IDs appear as adjacent path
//     entries in that order. For Unreachable and NegativeCycle results it
//     is always false. Pure and side-effect free.
//
// Complexity:
//
//   - BuildPath: O(len(path)). ContainsEdge: O(len(path)).
package route
