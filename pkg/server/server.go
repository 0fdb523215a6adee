// Package server exposes the transform pipeline over HTTP: a health
// check, Prometheus metrics, and a synchronous transform endpoint for
// callers that would rather POST source than shell out to the CLI.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/darklua-go/darklua/pkg/config"
	"github.com/darklua-go/darklua/pkg/telemetry/metrics"
)

// Server is the HTTP front end for the transform pipeline.
type Server struct {
	cfg        *config.Config
	collector  *metrics.Collector
	httpServer *http.Server

	mu           sync.RWMutex
	isRunning    bool
	shutdownOnce sync.Once
}

// New creates a Server. collector may be nil, in which case /metrics
// returns 404.
func New(cfg *config.Config, collector *metrics.Collector) *Server {
	return &Server{cfg: cfg, collector: collector}
}

// Start starts the HTTP server and blocks until ctx is cancelled or the
// server fails. When ctx is cancelled it shuts the server down gracefully
// before returning; a listen error is returned without a shutdown.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server: already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting transform server", "address", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the server, giving in-flight requests 10
// seconds to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				shutdownErr = fmt.Errorf("server: shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		slog.Info("transform server stopped")
	})
	return shutdownErr
}

// Handler returns the configured HTTP handler, for use in tests with
// httptest.Server without binding a real port.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/transform", http.HandlerFunc(s.handleTransform))

	if s.collector != nil {
		path := s.cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		mux.Handle(path, s.collector.Handler())
	}

	var handler http.Handler = mux
	handler = recoveryMiddleware(handler)
	handler = loggingMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}
