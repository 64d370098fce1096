// Package jobserver provides the HTTP API: job analysis, feed search,
// the periodic auto-check and its scheduler, settings and notifications.
package jobserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bertramb10/jobscout/internal/engine/jobs"
	"github.com/bertramb10/jobscout/internal/scheduler"
)

// Server is the HTTP front of the job pipeline.
type Server struct {
	httpServer *http.Server
	store      *jobs.JobStore
	sched      *scheduler.Scheduler
}

// New wires the routes. The scheduler is attached separately so main
// can point it at the server's own auto-check.
func New(addr string, store *jobs.JobStore) *Server {
	s := &Server{store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze-job", s.handleAnalyzeJob)
	mux.HandleFunc("POST /api/fetch-jobs", s.handleFetchJobs)
	mux.HandleFunc("GET /api/auto-check-jobs", s.handleAutoCheck)
	mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	mux.HandleFunc("POST /api/cron/start", s.handleCronStart)
	mux.HandleFunc("POST /api/cron/stop", s.handleCronStop)
	mux.HandleFunc("GET /api/cron", s.handleCronStatus)
	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.HandleFunc("POST /api/settings", s.handleSaveSettings)
	mux.HandleFunc("GET /api/profiles", s.handleGetProfiles)
	mux.HandleFunc("POST /api/profiles", s.handleUpdateProfiles)
	mux.HandleFunc("POST /api/test-email", s.handleTestEmail)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analyze-job may fetch a slow posting page
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// AttachScheduler hands the server the cron scheduler controlled by the
// /api/cron endpoints.
func (s *Server) AttachScheduler(sched *scheduler.Scheduler) {
	s.sched = sched
}

// Handler exposes the routing for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-stop:
	}

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.sched != nil && s.sched.Running() {
		s.sched.Stop() //nolint:errcheck
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := s.store.Close(); err != nil {
		slog.Warn("store close failed", slog.Any("error", err))
	}
	slog.Info("server stopped")
	return nil
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration", time.Since(start)))
	})
}
