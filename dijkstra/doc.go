// Package dijkstra provides a reusable single-pair shortest-path router over a
// static core.Graph with non-negative edge weights.
//
// Overview:
//
//   - NewRouter validates and freezes the graph once; BuildRoute answers any number
//     of independent (from, to) queries against it.
//   - Each BuildRoute call owns its traversal state (tentative distances, finalized
//     flags, predecessor edges, heap). Nothing is cached on the Router, so a call
//     never observes leftovers from a previous one and concurrent calls are safe.
//   - The search stops as soon as the target is finalized.
//   - The router knows nothing about what vertices and edges mean; domain metadata
//     lives with whoever built the graph, keyed by core.EdgeID.
//
// Tie-breaking (stable for a fixed graph build order):
//
//   - Relaxation uses strict "<": the first edge that reaches a vertex with the
//     minimal tentative weight keeps it. Edges are scanned in finalization order of
//     their source vertex, then in insertion order within a vertex.
//   - Heap entries with equal weight are popped lower vertex id first.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per query with a binary heap and lazy decrease-key.
//   - Space: O(V + E) per query.
//
// Options:
//
//   - WithMaxWeight(w):         give up on vertices farther than w (w ≥ 0).
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable (t > 0).
//
// Errors (sentinel):
//
//   - ErrNilGraph:        NewRouter got a nil graph.
//   - ErrNegativeWeight:  a negative edge weight was found by the pre-scan.
//   - ErrVertexNotFound:  from or to is not a vertex of the graph.
//   - ErrUnreachable:     no path from → to (within the configured limits).
//   - ErrBadMaxWeight:    WithMaxWeight got a negative value (panics).
//   - ErrBadInfThreshold: WithInfEdgeThreshold got a non-positive value (panics).
//
// Example:
//
//	r, err := dijkstra.NewRouter(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, err := r.BuildRoute(0, 3)
//	if errors.Is(err, dijkstra.ErrUnreachable) {
//	    // no path
//	}
//	fmt.Println(route.Weight, route.Edges)
package dijkstra
