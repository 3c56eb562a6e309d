// SPDX-License-Identifier: MIT

// Package core defines the Graph, Edge, id types, options and sentinel errors.
//
// Graph uses one sync.RWMutex (mu) for the build phase. After Freeze nothing
// mutates, but reads still take the read lock so that a Graph observed
// mid-build stays consistent.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrEdgeNotFound indicates an edge id outside [0, EdgeCount()).
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrGraphFrozen indicates a mutation after Freeze.
	ErrGraphFrozen = errors.New("core: graph is frozen")
)

// VertexID identifies a vertex; valid ids form the dense range [0, VertexCount()).
type VertexID = int

// EdgeID identifies an edge; valid ids form the dense range [0, EdgeCount()).
type EdgeID = int

// Edge is a directed weighted connection From→To.
type Edge struct {
	// ID is the dense edge identifier assigned by AddEdge.
	ID EdgeID

	// From is the source vertex.
	From VertexID

	// To is the destination vertex.
	To VertexID

	// Weight is the traversal cost, finite and ≥ 0.
	Weight float64
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithEdgeCapacity preallocates room for n edges.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edges = make([]Edge, 0, n)
		}
	}
}

// Graph is a directed weighted multigraph over dense vertex ids.
type Graph struct {
	mu     sync.RWMutex // guards all fields during the build phase
	frozen bool

	// Storage
	vertexCount int
	edges       []Edge     // edge id → Edge
	incidence   [][]EdgeID // vertex id → out-edge ids in insertion order
}

// NewGraph creates a Graph with vertexCount vertices and no edges.
// A negative vertexCount is treated as zero.
// Complexity: O(V).
func NewGraph(vertexCount int, opts ...GraphOption) *Graph {
	if vertexCount < 0 {
		vertexCount = 0
	}
	g := &Graph{
		vertexCount: vertexCount,
		incidence:   make([][]EdgeID, vertexCount),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
