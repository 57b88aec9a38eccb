// Package server exposes the aggregated container status over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gamemon/gamemon/internal/metrics"
	"github.com/gamemon/gamemon/internal/status"

	"github.com/gorilla/mux"
	"github.com/samber/lo"
)

const (
	ServiceName = "docker-game-server-monitor"
	DisplayName = "Docker Game Server Monitor"

	DefaultAddr = ":5000"
)

type Collector interface {
	Collect(ctx context.Context, targets []status.Target) map[string]status.Record
}

type SystemProbe interface {
	Snapshot(ctx context.Context) metrics.Snapshot
}

type Server struct {
	collector Collector
	probe     SystemProbe
	targets   []status.Target
	version   string
	now       func() time.Time
	handler   http.Handler
}

func New(collector Collector, probe SystemProbe, targets []status.Target, version string) *Server {
	s := &Server{
		collector: collector,
		probe:     probe,
		targets:   targets,
		version:   version,
		now:       time.Now,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)

	s.handler = withRequestLog(withCORS(r))
	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Endpoints maps each path to a short description.
func Endpoints() map[string]string {
	return map[string]string{
		"/":       "API information",
		"/health": "Health check",
		"/status": "Real-time game server status",
	}
}

type IndexResponse struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Endpoints        map[string]string `json:"endpoints"`
	MonitoredServers []string          `json:"monitored_servers"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, IndexResponse{
		Name:      DisplayName,
		Version:   s.version,
		Endpoints: Endpoints(),
		MonitoredServers: lo.Map(s.targets, func(t status.Target, _ int) string {
			return t.Name
		}),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Timestamp: s.timestamp(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	servers := s.collector.Collect(ctx, s.targets)
	system := s.probe.Snapshot(ctx)

	writeJSON(w, http.StatusOK, status.Report{
		Timestamp: s.timestamp(),
		System:    system,
		Servers:   servers,
	})
}

func (s *Server) timestamp() string {
	return s.now().Format(time.RFC3339Nano)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response.", "err", err)
	}
}

// Run serves until ctx is cancelled, then gives in-flight requests five seconds to finish.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server.")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
