// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ppiankov/clariscan/internal/logging"
	"github.com/ppiankov/clariscan/internal/model"
	"github.com/ppiankov/clariscan/internal/pipeline"
	"github.com/ppiankov/clariscan/internal/store"
)

// Server is the ClariScan HTTP API
type Server struct {
	pipeline *pipeline.Pipeline
	store    *store.Store
	cfg      model.ServerConfig
	metrics  *Metrics
	logger   *slog.Logger
	router   *mux.Router
}

// New builds the router. A nil store disables persistence and the /documents routes answer 503.
func New(p *pipeline.Pipeline, st *store.Store, cfg model.ServerConfig) *Server {
	s := &Server{
		pipeline: p,
		store:    st,
		cfg:      cfg,
		metrics:  NewMetrics(),
		logger:   logging.New("server"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, Logger(s.logger), Recoverer(s.logger), CORS(s.cfg.CORSOrigins), s.metrics.Instrument)

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/analyze/clause", s.handleClause).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/detect", s.handleDetect).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/rules", s.handleRules).Methods(http.MethodGet)
	r.HandleFunc("/documents", s.handleListDocuments).Methods(http.MethodGet)
	r.HandleFunc("/documents/{id:[0-9]+}", s.handleGetDocument).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not found")
	})
	return r
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is canceled, then drains connections
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr, "persistence", s.store != nil)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
