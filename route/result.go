package route

import "time"

// Kind tags a Result with its outcome variant.
type Kind int

const (
	// Found indicates a finite shortest path from start to end exists;
	// Distance and Path are meaningful.
	Found Kind = iota

	// Unreachable indicates no finite-distance path exists; Distance is
	// conceptually infinite and Path is empty.
	Unreachable

	// NegativeCycle indicates a cycle of negative total weight reachable
	// from start, making "shortest path" undefined. Only the relaxation
	// algorithm reports this variant.
	NegativeCycle
)

// String returns a human-readable variant name.
func (k Kind) String() string {
	switch k {
	case Found:
		return "Found"
	case Unreachable:
		return "Unreachable"
	case NegativeCycle:
		return "NegativeCycle"
	default:
		return "Unknown"
	}
}

// Result is the immutable outcome of one shortest-path query.
//
// Kind decides which fields carry meaning:
//
//	Found         – Distance, Path, VisitedOrder, Algorithm, Elapsed.
//	Unreachable   – VisitedOrder, Algorithm, Elapsed (Path empty).
//	NegativeCycle – Algorithm, Elapsed only.
type Result struct {
	// Kind is the outcome variant tag.
	Kind Kind

	// Distance is the total weight of the shortest path (Found only).
	Distance int64

	// Path is the vertex sequence from start to end inclusive (Found only).
	Path []string

	// VisitedOrder records vertices other than the start, in settlement
	// order (priority selection) or first-improvement order (relaxation).
	// Diagnostic only; contains no duplicates.
	VisitedOrder []string

	// Algorithm is the display name of the algorithm that produced this
	// record, e.g. "Dijkstra" or "Bellman-Ford".
	Algorithm string

	// Elapsed is the wall-clock duration of the algorithm body,
	// excluding graph construction and input validation.
	Elapsed time.Duration
}

// NewFound builds a Found result.
func NewFound(algorithm string, distance int64, path, visited []string, elapsed time.Duration) *Result {
	return &Result{
		Kind:         Found,
		Distance:     distance,
		Path:         path,
		VisitedOrder: visited,
		Algorithm:    algorithm,
		Elapsed:      elapsed,
	}
}

// NewUnreachable builds an Unreachable result (empty path, no distance).
func NewUnreachable(algorithm string, visited []string, elapsed time.Duration) *Result {
	return &Result{
		Kind:         Unreachable,
		VisitedOrder: visited,
		Algorithm:    algorithm,
		Elapsed:      elapsed,
	}
}

// NewNegativeCycle builds a NegativeCycle result (no path, no distance,
// no visit order).
func NewNegativeCycle(algorithm string, elapsed time.Duration) *Result {
	return &Result{
		Kind:      NegativeCycle,
		Algorithm: algorithm,
		Elapsed:   elapsed,
	}
}

// ContainsEdge reports whether the directed edge from→to lies on the
// reported path, i.e. from and to appear as adjacent path entries in that
// order. Always false for Unreachable and NegativeCycle results.
func (r *Result) ContainsEdge(from, to string) bool {
	if r == nil || r.Kind != Found {
		return false
	}
	for i := 0; i+1 < len(r.Path); i++ {
		if r.Path[i] == from && r.Path[i+1] == to {
			return true
		}
	}

	return false
}

// BuildPath reconstructs the start→end vertex sequence from a predecessor
// map, where prev[v] names the vertex preceding v on the shortest path
// and the empty string means "no predecessor".
//
// The walk starts at end, prepends predecessors until a vertex with no
// predecessor is reached, and is valid only if that vertex is start.
// An invalid walk (end has no predecessor and is not start, or the chain
// terminates elsewhere) returns nil, the Unreachable case.
func BuildPath(prev map[string]string, start, end string) []string {
	// Collect the reversed chain end → ... → start.
	path := make([]string, 0, len(prev))
	cur := end
	for {
		path = append(path, cur)
		if cur == start {
			break
		}
		p := prev[cur]
		if p == "" {
			// Chain broke before reaching start: no valid path.
			return nil
		}
		cur = p
	}

	// Reverse in place to get start → end.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
