package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"

	"collegehub/internal/backend"
	"collegehub/internal/server"
)

func TestResetDB_WrongTokenNeverReachesBackend(t *testing.T) {
	var backendCalls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalls.Add(1)
	}))
	defer upstream.Close()

	handler := newTestServer(t, upstream)

	for _, payload := range []string{
		`{"adminToken":"wrong"}`,
		`{"adminToken":""}`,
		`{}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/admin-reset-db", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("payload %s: status = %d, want %d", payload, rec.Code, http.StatusForbidden)
		}
		if !strings.Contains(rec.Body.String(), "Unauthorized") {
			t.Errorf("payload %s: body = %q, want Unauthorized", payload, rec.Body.String())
		}
	}
	if got := backendCalls.Load(); got != 0 {
		t.Errorf("backend calls = %d, want 0", got)
	}
}

func TestResetDB_ValidTokenForwardsAndRelays(t *testing.T) {
	var forwarded map[string]any
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/reset-db" {
			t.Errorf("path = %q, want /api/admin/reset-db", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&forwarded); err != nil {
			t.Fatalf("decode forwarded payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Database reset"}`))
	}))
	defer upstream.Close()

	handler := newTestServer(t, upstream)

	req := httptest.NewRequest(http.MethodPost, "/api/admin-reset-db",
		strings.NewReader(`{"adminToken":"secret-reset"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := forwarded["adminToken"]; got != "secret-reset" {
		t.Errorf("forwarded adminToken = %v, want %q", got, "secret-reset")
	}
	if !strings.Contains(rec.Body.String(), "Database reset") {
		t.Errorf("body = %q, want relayed backend response", rec.Body.String())
	}
}

func TestResetDB_BackendDownReturns500(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	srv := server.New(backend.New("http://127.0.0.1:1"), nil, "secret-reset", logger)
	handler := srv.RegisterRoutes()

	req := httptest.NewRequest(http.MethodPost, "/api/admin-reset-db",
		strings.NewReader(`{"adminToken":"secret-reset"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "Failed to reset database") {
		t.Errorf("body = %q, want reset failure error", rec.Body.String())
	}
}
