// Package engine is the shortest-path computation core behind a small
// graph visualizer: a pure, synchronous query engine over an in-memory
// weighted directed graph.
//
// 🚀 What is pathviz/engine?
//
//	A compact, zero-dependency library that brings together:
//		• Core primitives: an immutable-during-query directed multigraph
//		• Shortest paths: Dijkstra (priority selection, non-negative weights)
//		• Shortest paths: Bellman–Ford (edge relaxation, negative weights,
//		  negative-cycle detection)
//		• Uniform reporting: one tagged result record shared by both
//		  algorithms, with path reconstruction, settlement/visit order,
//		  and wall-clock timing
//		• Path-membership queries for edge highlighting
//
// ✨ Why this shape?
//
//   - One result record – callers compare algorithms without re-plumbing
//   - Deterministic – equal-distance ties break by smallest vertex ID
//   - Pure Go – no cgo, no hidden deps, no I/O, no persisted state
//
// Everything is organized under three subpackages:
//
//	core/        — Graph, Edge, construction and read-only accessors
//	dijkstra/    — priority-selection shortest path
//	bellmanford/ — relaxation shortest path with negative-cycle detection
//	route/       — shared Result record, path rebuild, membership query
//
// Quick ASCII example (the bundled demo graph):
//
//	A──4──▶B──3──▶C
//	│      ▲ ╲     │
//	2      7  1    2
//	▼      │   ▼   ▼
//	E◀──3──┼───D◀──┘
//	└──────┘
//
//	res, _ := dijkstra.Compute(core.DemoGraph(), "A", "C")
//	// res.Distance == 7, res.Path == [A B C]
//
// A query never mutates the graph: all working state (distances,
// predecessors, visit order) is local to the call, so a single Graph value
// may be shared read-only across queries.
package engine
