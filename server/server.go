// SPDX-License-Identifier: MIT

// Package server exposes the query surface over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /api/v1/buses/{name}
//	GET /api/v1/stops/{name}/buses
//	GET /api/v1/route?from=&to=
//	GET /api/v1/map
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/handler"
)

// Server serves read-only queries from one RequestHandler.
type Server struct {
	h       *handler.RequestHandler
	cfg     config.ServerConfig
	log     *slog.Logger
	handler http.Handler
}

// New builds the router and wraps it, innermost first, in request logging,
// panic recovery, CORS and gzip compression.
func New(h *handler.RequestHandler, cfg config.ServerConfig, logger *slog.Logger) (*Server, error) {
	s := &Server{h: h, cfg: cfg, log: logger}

	r := mux.NewRouter()
	s.registerRoutes(r)

	var next http.Handler = r
	next = loggingMiddleware(logger)(next)
	next = recoveryMiddleware(logger)(next)
	next = corsMiddleware(cfg.AllowedOrigins)(next)
	next, err := gzipMiddleware(next)
	if err != nil {
		return nil, err
	}
	s.handler = next

	return s, nil
}

// Handler returns the full middleware chain.
func (s *Server) Handler() http.Handler { return s.handler }

// Run serves until ctx is done, then shuts down within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("shutdown complete")

	return nil
}
