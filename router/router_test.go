package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) RegisterPing(api huma.API) {
	huma.Get(api, "/ping", func(context.Context, *struct{}) (*struct{ Body string }, error) {
		return &struct{ Body string }{"pong"}, nil
	})
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestNew(t *testing.T) {
	var calls []string
	h := New("Test", "1.0.0",
		func(http.ResponseWriter, *http.Request) { calls = append(calls, "readiness") },
		func(w http.ResponseWriter, _ *http.Request) { io.WriteString(w, "up 1\n") },
		OptUseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			calls = append(calls, "middleware")
			next(ctx)
		}),
		OptGroup("/api", OptAutoRegister(pingHandler{})),
	)

	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/liveness").Code)
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/readiness").Code)
	assert.Equal(t, "up 1\n", serve(t, h, http.MethodGet, "/metrics").Body.String())

	resp := serve(t, h, http.MethodGet, "/api/ping")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "pong")

	assert.Equal(t, []string{"readiness", "middleware"}, calls)
}

func TestOptGroupEmptyPrefix(t *testing.T) {
	h := New("Test", "1.0.0",
		func(http.ResponseWriter, *http.Request) {},
		func(http.ResponseWriter, *http.Request) {},
		OptGroup("", OptAutoRegister(pingHandler{})),
	)

	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/ping").Code)
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/openapi.json").Code)
}
