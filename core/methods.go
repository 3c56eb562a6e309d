// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion, freeze, and read-only queries over the dense graph.
// Determinism:
//   - Edge ids are assigned sequentially from 0.
//   - IncidentEdges(v) lists out-edges of v in insertion order.
// Concurrency:
//   - AddEdge/Freeze under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends a directed edge from → to with the given weight and returns its id.
//
// Steps:
//  1. Validate weight (finite, ≥ 0).
//  2. Lock mu; reject if frozen.
//  3. Validate both endpoints are in range.
//  4. Append to the edge catalog and to from's incidence list.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, weight float64) (EdgeID, error) {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, fmt.Errorf("%w: %d→%d weight=%g", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return 0, ErrGraphFrozen
	}
	if !g.inRange(from) {
		return 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, from)
	}
	if !g.inRange(to) {
		return 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, to)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: weight})
	g.incidence[from] = append(g.incidence[from], id)

	return id, nil
}

// Freeze ends the build phase. Subsequent AddEdge calls fail with ErrGraphFrozen.
// Idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexCount
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inRange(v)
}

// Edge returns a copy of the edge with the given id.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// IncidentEdges returns the ids of edges leaving v, in insertion order.
//
// The returned slice aliases internal storage; callers must not modify it.
// On a frozen graph it never changes, so no copy is made.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(1).
func (g *Graph) IncidentEdges(v VertexID) ([]EdgeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return g.incidence[v], nil
}

// Edges returns a copy of all edges ordered by id.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// inRange reports whether v is a vertex id. Caller holds mu.
func (g *Graph) inRange(v VertexID) bool {
	return v >= 0 && v < g.vertexCount
}
