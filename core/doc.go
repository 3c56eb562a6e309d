// SPDX-License-Identifier: MIT

// Package core provides a compact directed weighted graph over a dense range
// of integer vertex ids, built once and then frozen for read-only traversal.
//
// The Graph G = (V,E):
//
//   - Vertices are the integers [0, VertexCount()); no vertex lifecycle.
//   - Edges are directed From→To with a non-negative float64 Weight.
//   - Edge ids are dense and assigned sequentially by AddEdge ("first added, first id").
//   - Parallel edges and self-loops are allowed: a transit network routinely has
//     several buses between the same pair of stops.
//   - Out-edges of each vertex are kept in insertion order, so traversal order is
//     deterministic for a fixed build sequence.
//
// Lifecycle:
//
//	g := core.NewGraph(n)          // build phase: AddEdge only
//	g.AddEdge(0, 1, 4.5)
//	g.Freeze()                     // query phase: reads only, safe for concurrent use
//
// Core Methods:
//
//	AddEdge(from, to VertexID, w float64) (EdgeID, error) // O(1) amortized
//	Edge(id EdgeID) (Edge, error)                        // O(1)
//	IncidentEdges(v VertexID) ([]EdgeID, error)          // O(1), read-only view
//	VertexCount() int, EdgeCount() int                   // O(1)
//	Freeze(), Frozen()
//
// Errors:
//
//	ErrVertexOutOfRange – vertex id outside [0, VertexCount()).
//	ErrEdgeNotFound     – edge id outside [0, EdgeCount()).
//	ErrBadWeight        – negative, NaN or infinite weight.
//	ErrGraphFrozen      – AddEdge after Freeze.
package core
