// SPDX-License-Identifier: MIT

package router

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/core"
	"github.com/katalvlaran/transitcat/dijkstra"
)

// pathFinder is the part of dijkstra.Router the planner relies on.
type pathFinder interface {
	BuildRoute(from, to core.VertexID) (dijkstra.RouteInfo, error)
}

// TransportRouter plans trips over a frozen catalogue.
// All methods are read-only and safe for concurrent use.
type TransportRouter struct {
	graph  *Graph
	solver pathFinder
}

// NewTransportRouter builds the ride graph from cat and prepares the solver.
// opts are passed through to the solver.
func NewTransportRouter(cat *catalogue.Catalogue, settings Settings, opts ...dijkstra.Option) (*TransportRouter, error) {
	rg, err := BuildGraph(cat, settings)
	if err != nil {
		return nil, err
	}
	solver, err := dijkstra.NewRouter(rg.g, opts...)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	return &TransportRouter{graph: rg, solver: solver}, nil
}

// Graph returns the ride graph.
func (tr *TransportRouter) Graph() *Graph { return tr.graph }

// Settings returns the routing settings.
func (tr *TransportRouter) Settings() Settings { return tr.graph.settings }

// GetRoute plans the fastest trip from → to.
//
// Steps:
//  1. Resolve both names; an unknown name is ErrUnknownStop, never ErrRouteNotFound.
//  2. from == to returns an empty trip without searching.
//  3. Search; no path is ErrRouteNotFound.
//  4. Expand every path edge into a Wait item and a Bus item.
func (tr *TransportRouter) GetRoute(from, to string) (Trip, error) {
	src, ok := tr.graph.VertexID(from)
	if !ok {
		return Trip{}, fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	dst, ok := tr.graph.VertexID(to)
	if !ok {
		return Trip{}, fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}

	if src == dst {
		return Trip{Items: []Item{}, Stages: []EdgeInfo{}}, nil
	}

	info, err := tr.solver.BuildRoute(src, dst)
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return Trip{}, fmt.Errorf("%w: %q -> %q", ErrRouteNotFound, from, to)
	}
	if err != nil {
		return Trip{}, fmt.Errorf("router: %w", err)
	}

	wait := float64(tr.graph.settings.BusWaitTime)
	trip := Trip{
		TotalTime: info.Weight,
		Items:     make([]Item, 0, 2*len(info.Edges)),
		Stages:    make([]EdgeInfo, 0, len(info.Edges)),
	}
	for _, id := range info.Edges {
		e := tr.graph.edges[id]
		trip.Stages = append(trip.Stages, e)
		trip.Items = append(trip.Items,
			Item{Type: ItemWait, StopName: e.From, Time: wait},
			Item{Type: ItemBus, Bus: e.Bus, SpanCount: e.SpanCount, Time: e.Time - wait},
		)
	}

	return trip, nil
}
