package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, prefix string) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store, err := NewStore(logger)
	require.NoError(t, err)
	return NewRouter(&RouterOptions{EndpointsPrefix: prefix}, "Test", "1.0.0", "abc", "today", store, logger), &logs
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", "req-1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouterEndToEnd(t *testing.T) {
	h, logs := newTestRouter(t, "")

	resp := do(t, h, http.MethodPost, "/add_contact", `{"name":"bob","phone":"0987654321"}`)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var added struct {
		Success bool `json:"success"`
		Contact struct {
			Name string `json:"name"`
		} `json:"contact"`
		Stats struct {
			Total     int `json:"total"`
			WithEmail int `json:"with_email"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &added))
	assert.True(t, added.Success)
	assert.Equal(t, "Bob", added.Contact.Name)
	assert.Equal(t, 6, added.Stats.Total)
	assert.Equal(t, 5, added.Stats.WithEmail)

	resp = do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Bob")

	assert.Contains(t, logs.String(), `"x-request-id":"req-1"`)
	assert.Contains(t, logs.String(), `"msg":"contact added"`)
	assert.Contains(t, logs.String(), `"component":"store"`)
	assert.Contains(t, logs.String(), `"op":"add"`)
}

func TestRouterMetrics(t *testing.T) {
	h, _ := newTestRouter(t, "/api")

	require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/get_stats", "").Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/delete_contact", `{"name":"John Doe"}`).Code)

	body := do(t, h, http.MethodGet, "/metrics", "").Body.String()
	assert.Contains(t, body, `build_info{goversion=`)
	assert.Contains(t, body, `revision="abc"`)
	assert.Contains(t, body, "contacts_total 4\n")
	assert.Contains(t, body, "contacts_with_email 4\n")
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/get_stats",status="200"} 1`)
}

func TestNewServer(t *testing.T) {
	srv := NewServer(&ServerOptions{Host: "localhost", Port: "9000", ReadHeaderTimeout: time.Second},
		http.NotFoundHandler(), slog.New(slog.DiscardHandler))
	assert.Equal(t, "localhost:9000", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadHeaderTimeout)
	assert.NotNil(t, srv.ErrorLog)
}
