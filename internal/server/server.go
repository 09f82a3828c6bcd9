// Package server exposes the HTTP trigger invoked by the external scheduler.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"grantsync/internal/domain"
	"grantsync/internal/service"
)

// Syncer runs one sync cycle.
type Syncer interface {
	Sync(ctx context.Context) (*domain.CycleResult, error)
}

// SyncResponse is the trigger response body on success.
type SyncResponse struct {
	Status         string `json:"status"`
	GrantsDetected int    `json:"grants_detected"`
	GrantsSynced   int    `json:"grants_synced"`
	GrantsFailed   int    `json:"grants_failed"`
	SyncTime       string `json:"sync_time"`
}

// ErrorResponse is the trigger response body on cycle-level failure.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Server struct {
	syncer Syncer
	logger *slog.Logger
}

// New builds the HTTP router for the sync trigger and health endpoints.
func New(syncer Syncer, logger *slog.Logger) *chi.Mux {
	s := &Server{syncer: syncer, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/sync", s.handleSync)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	result, err := s.syncer.Sync(r.Context())
	if errors.Is(err, service.ErrSyncInFlight) {
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}
	if err != nil {
		s.logger.Error("sync cycle failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, SyncResponse{
		Status:         "success",
		GrantsDetected: result.Detected,
		GrantsSynced:   result.Synced,
		GrantsFailed:   len(result.Failed),
		SyncTime:       result.SyncTime.Format(time.RFC3339),
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
