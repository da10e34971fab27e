// SPDX-License-Identifier: MIT

// Package server exposes a read-only city map over HTTP: route queries,
// algorithm comparison, GeoJSON rendering, nearest-location lookup and
// Prometheus metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/internal/config"
	"github.com/katalvlaran/citynav/metrics"
)

// Server holds the map and the HTTP machinery around it. The graph is never
// mutated after New, so handlers share it without locking.
type Server struct {
	graph    *core.Graph
	index    *citymap.Index
	defaults config.QueryDefaults
	logger   *slog.Logger

	router     *mux.Router
	httpServer *http.Server
	shutdown   time.Duration
}

// New wires routes and middleware for g. A nil logger uses slog.Default().
func New(g *core.Graph, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if g == nil {
		return nil, errors.New("server: graph is nil")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	index, err := citymap.NewIndex(g)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	s := &Server{
		graph:    g,
		index:    index,
		defaults: cfg.Defaults,
		logger:   logger,
		router:   mux.NewRouter(),
		shutdown: cfg.Server.ShutdownTimeout,
	}
	s.routes()
	metrics.ObserveGraph(g)

	// recovery wraps the router, so it also covers the NotFound handlers.
	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.recovery(s.router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s, nil
}

func (s *Server) routes() {
	s.router.Use(s.requestID, s.logging)
	s.router.NotFoundHandler = s.requestID(s.logging(http.HandlerFunc(s.handleNotFound)))
	s.router.MethodNotAllowedHandler = s.requestID(s.logging(http.HandlerFunc(s.handleMethodNotAllowed)))

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/locations", s.handleLocations).Methods(http.MethodGet)
	api.HandleFunc("/route", s.handleRoute).Methods(http.MethodGet)
	api.HandleFunc("/compare", s.handleCompare).Methods(http.MethodGet)
	api.HandleFunc("/map", s.handleMap).Methods(http.MethodGet)
	api.HandleFunc("/nearest", s.handleNearest).Methods(http.MethodGet)
}

// Handler returns the full middleware chain, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully, waiting at most the configured shutdown timeout for requests
// in flight.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", l.Addr().String())
		errCh <- s.httpServer.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server", "timeout", s.shutdown.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	<-errCh

	return nil
}
