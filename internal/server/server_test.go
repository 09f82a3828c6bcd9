package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grantsync/internal/domain"
	"grantsync/internal/service"
)

type stubSyncer struct {
	result *domain.CycleResult
	err    error
}

func (s *stubSyncer) Sync(context.Context) (*domain.CycleResult, error) {
	return s.result, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestHandleSync_Success(t *testing.T) {
	syncTime := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	handler := New(&stubSyncer{
		result: &domain.CycleResult{
			Detected: 5,
			Synced:   4,
			Failed:   []domain.GrantFailure{{GrantID: "g9", Reason: "fetch grant: timeout"}},
			SyncTime: syncTime,
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/sync", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp SyncResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 5, resp.GrantsDetected)
	assert.Equal(t, 4, resp.GrantsSynced)
	assert.Equal(t, 1, resp.GrantsFailed)
	assert.Equal(t, "2025-07-01T12:00:00Z", resp.SyncTime)
}

func TestHandleSync_CycleFailure(t *testing.T) {
	handler := New(&stubSyncer{err: errors.New("commit cycle: write failed")}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/sync", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Message, "commit cycle")
}

func TestHandleSync_InFlight(t *testing.T) {
	handler := New(&stubSyncer{err: service.ErrSyncInFlight}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/sync", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestHandleHealth(t *testing.T) {
	handler := New(&stubSyncer{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
