// SPDX-License-Identifier: MIT

package router

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/core"
)

// Graph is the immutable ride graph built from one catalogue snapshot.
type Graph struct {
	g         *core.Graph
	settings  Settings
	stopIDs   map[string]core.VertexID
	stopNames []string   // vertex id → stop name
	edges     []EdgeInfo // edge id → ride metadata
}

// BuildGraph freezes cat and builds the ride graph for settings.
//
// Steps:
//  1. Validate settings; freeze the catalogue.
//  2. Assign vertex ids in stop insertion order.
//  3. For each bus in insertion order add the forward pass, then the
//     mirrored pass for linear buses.
//  4. Freeze the graph.
//
// Errors: ErrNilCatalogue, ErrBadSettings, or an unexpected catalogue/core error.
// Missing distances are not errors; they only limit which edges exist.
// Complexity: O(Σ n²) over bus route lengths n.
func BuildGraph(cat *catalogue.Catalogue, settings Settings) (*Graph, error) {
	if cat == nil {
		return nil, ErrNilCatalogue
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	cat.Freeze()

	stops := cat.Stops()
	rg := &Graph{
		g:         core.NewGraph(len(stops)),
		settings:  settings,
		stopIDs:   make(map[string]core.VertexID, len(stops)),
		stopNames: make([]string, len(stops)),
	}
	// Catalogue stop ids are already dense in insertion order.
	for _, s := range stops {
		rg.stopIDs[s.Name] = s.ID
		rg.stopNames[s.ID] = s.Name
	}

	for _, bus := range cat.Buses() {
		if err := rg.addPass(cat, bus.Name, bus.Stops); err != nil {
			return nil, err
		}
		if bus.Circular {
			continue
		}
		if err := rg.addPass(cat, bus.Name, reversed(bus.Stops)); err != nil {
			return nil, err
		}
	}
	rg.g.Freeze()

	return rg, nil
}

// addPass adds an edge for every i<j on seq reachable without crossing a gap.
func (rg *Graph) addPass(cat *catalogue.Catalogue, bus string, seq []int) error {
	wait := float64(rg.settings.BusWaitTime)
	speed := rg.settings.metersPerMinute()

	for i := 0; i < len(seq); i++ {
		meters := 0
		for j := i + 1; j < len(seq); j++ {
			d, err := cat.ResolveDistanceByID(seq[j-1], seq[j])
			if errors.Is(err, catalogue.ErrMissingDistance) {
				break
			}
			if err != nil {
				return fmt.Errorf("router: bus %q: %w", bus, err)
			}
			meters += d

			weight := wait + float64(meters)/speed
			if _, err := rg.g.AddEdge(seq[i], seq[j], weight); err != nil {
				return fmt.Errorf("router: bus %q: %w", bus, err)
			}
			rg.edges = append(rg.edges, EdgeInfo{
				Bus:       bus,
				SpanCount: j - i,
				From:      rg.stopNames[seq[i]],
				To:        rg.stopNames[seq[j]],
				Time:      weight,
			})
		}
	}

	return nil
}

// Core returns the underlying frozen graph.
func (rg *Graph) Core() *core.Graph { return rg.g }

// Settings returns the settings the graph was built with.
func (rg *Graph) Settings() Settings { return rg.settings }

// VertexID returns the vertex of the named stop.
func (rg *Graph) VertexID(stop string) (core.VertexID, bool) {
	id, ok := rg.stopIDs[stop]
	return id, ok
}

// StopName returns the stop name of vertex v.
func (rg *Graph) StopName(v core.VertexID) (string, bool) {
	if v < 0 || v >= len(rg.stopNames) {
		return "", false
	}

	return rg.stopNames[v], true
}

// EdgeInfo returns the ride metadata of edge id.
func (rg *Graph) EdgeInfo(id core.EdgeID) (EdgeInfo, bool) {
	if id < 0 || id >= len(rg.edges) {
		return EdgeInfo{}, false
	}

	return rg.edges[id], true
}

// EdgeCount returns the number of ride edges.
func (rg *Graph) EdgeCount() int { return len(rg.edges) }

func reversed(seq []int) []int {
	out := make([]int, len(seq))
	for i, v := range seq {
		out[len(seq)-1-i] = v
	}

	return out
}
