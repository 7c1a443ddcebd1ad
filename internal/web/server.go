// Package web exposes the search engine over HTTP: POST a run, stream its
// results over a websocket, and list persisted solutions.
package web

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/mbrt/algfinder/internal/config"
	"github.com/mbrt/algfinder/internal/logging"
	"github.com/mbrt/algfinder/internal/store"
)

// Server is the HTTP front end for algfinder. It owns a run registry and
// an optional solution store; it never touches internal/cube or
// internal/search directly beyond constructing a run.
type Server struct {
	router *mux.Router
	cfg    config.ServerConfig
	logger zerolog.Logger
	runs   *runRegistry
}

// NewServer builds a Server with its routes registered. st may be nil, in
// which case solutions are not persisted and GET .../solutions always
// returns an empty list.
func NewServer(cfg config.ServerConfig, logger zerolog.Logger, st *store.Store) *Server {
	s := &Server{
		router: mux.NewRouter(),
		cfg:    cfg,
		logger: logging.Component(logger, "web"),
		runs:   newRunRegistry(st, logging.Component(logger, "web")),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/runs", s.handleCreateRun).Methods(http.MethodPost)
	api.HandleFunc("/runs/{id}/stream", s.handleStreamRun).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}/solutions", s.handleListSolutions).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}", s.handleCancelRun).Methods(http.MethodDelete)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
}

// Handler exposes the underlying router for use with httptest or a custom
// http.Server.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts the HTTP server on cfg.Address, shutting down when
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Address, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Address).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}
