// Package server is the local HTTP and WebSocket front end for the engine.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ChicagoDave/spacedc/internal/logging"
	"github.com/ChicagoDave/spacedc/internal/metrics"
	"github.com/ChicagoDave/spacedc/pkg/params"
	"github.com/ChicagoDave/spacedc/pkg/sweep"
)

// Options configures a Server. Zero values fall back to defaults.
type Options struct {
	Addr      string
	Project   string
	Base      params.ParameterSet
	Constants params.Constants

	Logger  *slog.Logger
	Metrics *metrics.Collector

	RequestsPerSecond float64
	Burst             int
	MaxSweepSteps     int
	TrustProxy        bool
}

// Server serves the comparison API for one base scenario. Every request
// starts from a copy of the base parameter set.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	metrics    *metrics.Collector
	limiter    *clientLimiter

	project       string
	base          params.ParameterSet
	constants     params.Constants
	maxSweepSteps int
	trustProxy    bool
}

// New creates a server. It returns an error only when metrics cannot be
// registered.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Metrics == nil {
		m, err := metrics.New(nil)
		if err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
		opts.Metrics = m
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 20
	}
	if opts.Burst < 1 {
		opts.Burst = 40
	}
	if opts.MaxSweepSteps < 2 || opts.MaxSweepSteps > sweep.MaxSteps {
		opts.MaxSweepSteps = sweep.MaxSteps
	}
	if opts.Addr == "" {
		opts.Addr = ":3000"
	}

	s := &Server{
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		limiter:       newClientLimiter(opts.RequestsPerSecond, opts.Burst),
		project:       opts.Project,
		base:          opts.Base,
		constants:     opts.Constants,
		maxSweepSteps: opts.MaxSweepSteps,
		trustProxy:    opts.TrustProxy,
	}
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

// Handler returns the routed handler with its middleware chain:
// metrics -> logging -> rate limit -> mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	mux.HandleFunc("GET /api/params", s.handleParams)
	mux.HandleFunc("GET /api/constants", s.handleConstants)
	mux.HandleFunc("GET /api/presets", s.handlePresets)

	mux.HandleFunc("POST /api/compare", s.handleCompare)
	mux.HandleFunc("POST /api/orbital", s.handleOrbital)
	mux.HandleFunc("POST /api/terrestrial", s.handleTerrestrial)
	mux.HandleFunc("POST /api/thermal", s.handleThermal)
	mux.HandleFunc("POST /api/breakeven", s.handleBreakeven)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("POST /api/sweep", s.handleSweep)
	mux.HandleFunc("GET /api/live", s.handleLive)

	mux.HandleFunc("GET /{$}", s.handleIndex)

	var handler http.Handler = mux
	handler = s.rateLimitMiddleware(handler)
	handler = loggingMiddleware(s.logger)(handler)
	handler = s.metrics.Middleware(handler)
	return handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("server starting", "addr", s.httpServer.Addr, "project", s.project)

	errCh := make(chan error, 1)
	go func() { errCh <- s.httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
