// Package dijkstra implements Dijkstra's shortest-path algorithm as a reusable
// router over a frozen core.Graph.
//
// Notes on implementation choices:
//
//   - We scan all edges once in NewRouter (O(E)) to reject negative weights early.
//   - We snapshot edges and incidence lists at construction; the graph is frozen, so
//     the snapshot never goes stale and queries take no locks.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries.
//   - Every BuildRoute allocates a fresh runner; the Router itself is immutable.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/transitcat/core"
)

// Router answers shortest-path queries over one immutable graph.
type Router struct {
	options   Options
	edges     []core.Edge     // edge id → Edge
	incidence [][]core.EdgeID // vertex id → out-edge ids
}

// NewRouter validates g, freezes it and prepares a router over it.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. No edge in g can have a negative weight (ErrNegativeWeight).
//
// Complexity: O(V + E).
func NewRouter(g *core.Graph, opts ...Option) (*Router, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Freeze: from here on the snapshot below is the graph.
	g.Freeze()

	// 4) Pre-scan all edges to detect negative weights.
	edges := g.Edges()
	for _, e := range edges {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Snapshot incidence lists.
	V := g.VertexCount()
	incidence := make([][]core.EdgeID, V)
	for v := 0; v < V; v++ {
		out, err := g.IncidentEdges(v)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: failed to get incident edges of %d: %w", v, err)
		}
		incidence[v] = out
	}

	return &Router{options: cfg, edges: edges, incidence: incidence}, nil
}

// VertexCount returns the number of vertices the router was built over.
func (r *Router) VertexCount() int { return len(r.incidence) }

// BuildRoute returns the minimum-weight path from → to.
//
// Returns:
//
//   - RouteInfo with total Weight and the path Edges in travel order.
//     from == to yields Weight 0 and no edges.
//   - ErrVertexNotFound if either endpoint is out of range.
//   - ErrUnreachable if the frontier is exhausted (or MaxWeight reached)
//     before the target is finalized.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func (r *Router) BuildRoute(from, to core.VertexID) (RouteInfo, error) {
	V := len(r.incidence)
	if from < 0 || from >= V {
		return RouteInfo{}, fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if to < 0 || to >= V {
		return RouteInfo{}, fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	run := newRunner(r, from, to)
	if !run.process() {
		return RouteInfo{}, fmt.Errorf("%w: %d→%d", ErrUnreachable, from, to)
	}

	return RouteInfo{Weight: run.dist[to], Edges: run.path()}, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	r        *Router
	from, to core.VertexID
	dist     []float64     // vertex → best-known weight from source
	done     []bool        // vertex → weight finalized
	prevEdge []core.EdgeID // vertex → edge used to reach it, -1 if none
	pq       nodePQ
}

// newRunner allocates fresh traversal state and seeds the heap with the source.
func newRunner(r *Router, from, to core.VertexID) *runner {
	V := len(r.incidence)
	run := &runner{
		r:        r,
		from:     from,
		to:       to,
		dist:     make([]float64, V),
		done:     make([]bool, V),
		prevEdge: make([]core.EdgeID, V),
		pq:       make(nodePQ, 0, V),
	}
	for v := 0; v < V; v++ {
		run.dist[v] = math.Inf(1)
		run.prevEdge[v] = -1
	}
	run.dist[from] = 0
	heap.Push(&run.pq, nodeItem{id: from, dist: 0})

	return run
}

// process runs the main loop and reports whether the target was finalized.
//
// Loop termination conditions:
//
//   - The target is popped and finalized (success).
//   - The heap becomes empty (unreachable).
//   - The minimum weight in the heap exceeds MaxWeight (unreachable within the cap).
func (run *runner) process() bool {
	for run.pq.Len() > 0 {
		// 1) Pop the smallest-weight item.
		item := heap.Pop(&run.pq).(nodeItem)
		u := item.id

		// 2) Skip stale entries for already finalized vertices.
		if run.done[u] {
			continue
		}

		// 3) Beyond the cap nothing else can be finalized.
		if item.dist > run.r.options.MaxWeight {
			return false
		}

		// 4) Finalize u; stop once the target is settled.
		run.done[u] = true
		if u == run.to {
			return true
		}

		// 5) Relax all outgoing edges of u.
		run.relax(u)
	}

	return false
}

// relax tries to improve tentative weights of u's out-neighbors.
// Assumes dist[u] is final.
func (run *runner) relax(u core.VertexID) {
	opts := run.r.options
	for _, id := range run.r.incidence[u] {
		e := run.r.edges[id]
		v := e.To
		if run.done[v] {
			continue
		}

		// Impassable edge.
		if e.Weight >= opts.InfEdgeThreshold {
			continue
		}

		newDist := run.dist[u] + e.Weight
		if newDist > opts.MaxWeight {
			continue
		}

		// Strict "<": the first edge that reaches the minimum keeps it.
		if newDist >= run.dist[v] {
			continue
		}

		run.dist[v] = newDist
		run.prevEdge[v] = id
		heap.Push(&run.pq, nodeItem{id: v, dist: newDist})
	}
}

// path walks predecessor edges back from the target and returns them source-first.
func (run *runner) path() []core.EdgeID {
	var edges []core.EdgeID
	for v := run.to; v != run.from; {
		id := run.prevEdge[v]
		edges = append(edges, id)
		v = run.r.edges[id].From
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	if edges == nil {
		edges = []core.EdgeID{}
	}

	return edges
}

// nodeItem represents a vertex and its tentative weight in the priority queue.
type nodeItem struct {
	id   core.VertexID
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by vertex id.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by weight; equal weights pop the lower vertex id first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
