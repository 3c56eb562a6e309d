// SPDX-License-Identifier: MIT

// Package handler answers bus, stop, route and map queries over one frozen
// catalogue. It is the single query surface shared by the batch runner and
// the HTTP server.
package handler

import (
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/jsonio"
	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/router"
)

// ErrNilDependency indicates New got a nil catalogue or router.
var ErrNilDependency = errors.New("handler: nil catalogue or router")

// RequestHandler is read-only and safe for concurrent use.
type RequestHandler struct {
	cat    *catalogue.Catalogue
	router *router.TransportRouter
	render render.Settings

	// routes memoizes GetRoute outcomes; nil disables caching.
	routes *cache.Cache

	mapOnce sync.Once
	mapSVG  string
	mapErr  error
}

// Option customizes a RequestHandler.
type Option func(*RequestHandler)

// WithRouteCache keeps each route outcome for ttl. The graph never changes
// after build, so entries only expire to bound memory. Panics if ttl <= 0.
func WithRouteCache(ttl time.Duration) Option {
	if ttl <= 0 {
		panic("handler: WithRouteCache(ttl<=0)")
	}
	return func(h *RequestHandler) {
		h.routes = cache.New(ttl, 2*ttl)
	}
}

// New wires a handler. tr must have been built from cat.
func New(cat *catalogue.Catalogue, tr *router.TransportRouter, rs render.Settings, opts ...Option) (*RequestHandler, error) {
	if cat == nil || tr == nil {
		return nil, ErrNilDependency
	}

	h := &RequestHandler{cat: cat, router: tr, render: rs}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// BusStat returns the statistics of a bus.
func (h *RequestHandler) BusStat(name string) (catalogue.BusStats, error) {
	return h.cat.BusStats(name)
}

// StopBuses returns the sorted names of buses through a stop.
func (h *RequestHandler) StopBuses(name string) ([]string, error) {
	return h.cat.StopBuses(name)
}

// routeResult is one cached GetRoute outcome.
type routeResult struct {
	trip router.Trip
	err  error
}

// Route plans the fastest trip. With a route cache, repeated queries share
// one Trip value; callers must treat it as read-only.
func (h *RequestHandler) Route(from, to string) (router.Trip, error) {
	if h.routes == nil {
		return h.router.GetRoute(from, to)
	}

	key := from + "\x00" + to
	if v, ok := h.routes.Get(key); ok {
		res := v.(routeResult)
		return res.trip, res.err
	}
	trip, err := h.router.GetRoute(from, to)
	h.routes.SetDefault(key, routeResult{trip: trip, err: err})

	return trip, err
}

// CachedRoutes returns the number of live route cache entries.
func (h *RequestHandler) CachedRoutes() int {
	if h.routes == nil {
		return 0
	}

	return h.routes.ItemCount()
}

// Map returns the SVG map. The catalogue is frozen, so it is rendered once.
func (h *RequestHandler) Map() (string, error) {
	h.mapOnce.Do(func() {
		h.mapSVG, h.mapErr = render.RenderMap(h.cat, h.render)
	})

	return h.mapSVG, h.mapErr
}

// Process answers reqs in order. A missing bus, stop or route becomes a
// "not found" response; no request aborts the batch.
func (h *RequestHandler) Process(reqs []jsonio.StatRequest) []jsonio.Response {
	out := make([]jsonio.Response, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, h.answer(req))
	}

	return out
}

func (h *RequestHandler) answer(req jsonio.StatRequest) jsonio.Response {
	switch req.Type {
	case jsonio.TypeBus:
		st, err := h.BusStat(req.Name)
		if err != nil {
			return errorResponse(req.ID, err)
		}
		return jsonio.BusResponse{
			RequestID:       req.ID,
			Curvature:       st.Curvature,
			RouteLength:     st.RouteLength,
			StopCount:       st.StopCount,
			UniqueStopCount: st.UniqueStopCount,
		}

	case jsonio.TypeStop:
		buses, err := h.StopBuses(req.Name)
		if err != nil {
			return errorResponse(req.ID, err)
		}
		return jsonio.StopResponse{RequestID: req.ID, Buses: buses}

	case jsonio.TypeRoute:
		trip, err := h.Route(req.From, req.To)
		if err != nil {
			return errorResponse(req.ID, err)
		}
		return jsonio.NewRouteResponse(req.ID, trip)

	case jsonio.TypeMap:
		svg, err := h.Map()
		if err != nil {
			return errorResponse(req.ID, err)
		}
		return jsonio.MapResponse{RequestID: req.ID, Map: svg}
	}

	return jsonio.ErrorResponse{RequestID: req.ID, ErrorMessage: "unknown request type " + req.Type}
}

// IsNotFound reports whether err means the queried bus, stop or route does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, catalogue.ErrUnknownBus) ||
		errors.Is(err, catalogue.ErrUnknownStop) ||
		errors.Is(err, router.ErrRouteNotFound)
}

func errorResponse(id int, err error) jsonio.ErrorResponse {
	if IsNotFound(err) {
		return jsonio.ErrorResponse{RequestID: id, ErrorMessage: jsonio.NotFound}
	}

	return jsonio.ErrorResponse{RequestID: id, ErrorMessage: err.Error()}
}
