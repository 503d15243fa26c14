package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"teammate-chat/contract"
	"time"
)

// Snapshot is the payload served on /api/monitoring.
type Snapshot struct {
	Topics        int       `json:"topics"`
	Subscriptions int       `json:"subscriptions"`
	Goroutines    int       `json:"goroutines"`
	StartedAt     time.Time `json:"started_at"`
	Uptime        string    `json:"uptime"`
}

type MonitoringServer struct {
	log       *slog.Logger
	registry  contract.IRegistry
	startedAt time.Time
}

func NewMonitoringServer(log *slog.Logger, registry contract.IRegistry) *MonitoringServer {
	return &MonitoringServer{log: log, registry: registry, startedAt: time.Now()}
}

func (s *MonitoringServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/monitoring", s.handleMonitoring)
	return mux
}

// Start serves until ctx is done.
func (s *MonitoringServer) Start(ctx context.Context, port int) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	s.log.Info("Monitoring available", "url", fmt.Sprintf("http://localhost:%d/api/monitoring", port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *MonitoringServer) Snapshot() Snapshot {
	stats := s.registry.Stats()
	return Snapshot{
		Topics:        stats.Topics,
		Subscriptions: stats.Subscriptions,
		Goroutines:    runtime.NumGoroutine(),
		StartedAt:     s.startedAt,
		Uptime:        time.Since(s.startedAt).Round(time.Second).String(),
	}
}

func (s *MonitoringServer) handleMonitoring(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Snapshot()); err != nil {
		s.log.Warn("failed to encode monitoring snapshot", "error", err)
	}
}
