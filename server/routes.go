// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/jsonio"
	"github.com/katalvlaran/transitcat/router"
)

// BusStatResponse is the body of GET /api/v1/buses/{name}.
type BusStatResponse struct {
	Bus             string  `json:"bus"`
	Curvature       float64 `json:"curvature"`
	RouteLength     float64 `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopBusesResponse is the body of GET /api/v1/stops/{name}/buses.
// Buses is sorted and never null.
type StopBusesResponse struct {
	Stop  string   `json:"stop"`
	Buses []string `json:"buses"`
}

// RouteResponse is the body of GET /api/v1/route.
type RouteResponse struct {
	From      string             `json:"from"`
	To        string             `json:"to"`
	TotalTime float64            `json:"total_time"`
	Items     []jsonio.RouteItem `json:"items"`
}

func (s *Server) registerRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/buses/{name}", s.getBus).Methods(http.MethodGet)
	api.HandleFunc("/stops/{name}/buses", s.getStopBuses).Methods(http.MethodGet)
	api.HandleFunc("/route", s.getRoute).Methods(http.MethodGet)
	api.HandleFunc("/map", s.getMap).Methods(http.MethodGet)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, "ok"); err != nil {
		s.log.Debug("write failed", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) getBus(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	st, err := s.h.BusStat(name)
	switch {
	case errors.Is(err, catalogue.ErrUnknownBus):
		respondError(w, s.log, http.StatusNotFound, "bus not found")
		return
	case err != nil:
		s.internalError(w, r, err)
		return
	}

	respondJSON(w, s.log, http.StatusOK, BusStatResponse{
		Bus:             name,
		Curvature:       st.Curvature,
		RouteLength:     st.RouteLength,
		StopCount:       st.StopCount,
		UniqueStopCount: st.UniqueStopCount,
	})
}

func (s *Server) getStopBuses(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	buses, err := s.h.StopBuses(name)
	switch {
	case errors.Is(err, catalogue.ErrUnknownStop):
		respondError(w, s.log, http.StatusNotFound, "stop not found")
		return
	case err != nil:
		s.internalError(w, r, err)
		return
	}

	respondJSON(w, s.log, http.StatusOK, StopBusesResponse{Stop: name, Buses: buses})
}

func (s *Server) getRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		respondError(w, s.log, http.StatusBadRequest, "missing from or to parameter")
		return
	}

	trip, err := s.h.Route(from, to)
	switch {
	case errors.Is(err, router.ErrUnknownStop):
		respondError(w, s.log, http.StatusNotFound, "stop not found")
		return
	case errors.Is(err, router.ErrRouteNotFound):
		respondError(w, s.log, http.StatusNotFound, "route not found")
		return
	case err != nil:
		s.internalError(w, r, err)
		return
	}

	resp := jsonio.NewRouteResponse(0, trip)
	respondJSON(w, s.log, http.StatusOK, RouteResponse{
		From:      from,
		To:        to,
		TotalTime: resp.TotalTime,
		Items:     resp.Items,
	})
}

func (s *Server) getMap(w http.ResponseWriter, r *http.Request) {
	svg, err := s.h.Map()
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, svg); err != nil {
		s.log.Warn("write failed", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed", "path", r.URL.Path, "error", err)
	respondError(w, s.log, http.StatusInternalServerError, "internal server error")
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes data with status. The header is already sent when
// encoding fails, so the failure can only be logged.
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("failed to encode response", "status", status, "error", err)
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, errorResponse{Error: message})
}
