package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdca-planner/internal/middleware"
	"pdca-planner/pkg/log"
	"pdca-planner/pkg/response"
)

type stubGoalChatHandler struct{}

func (stubGoalChatHandler) Chat(c *gin.Context)    { c.String(http.StatusOK, "chat") }
func (stubGoalChatHandler) Extract(c *gin.Context) { c.String(http.StatusOK, "extract") }

func newTestConfig() Config {
	l := log.NewNop()
	return Config{
		Logger:          l,
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "development",
		Middleware:      middleware.New(l, middleware.Config{}),
		GoalChatHandler: stubGoalChatHandler{},
	}
}

func serve(t *testing.T, srv *HTTPServer, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Missing logger", func(c *Config) { c.Logger = nil }},
		{"Missing mode", func(c *Config) { c.Mode = "" }},
		{"Missing port", func(c *Config) { c.Port = 0 }},
		{"Missing goal chat handler", func(c *Config) { c.GoalChatHandler = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			tt.mutate(&cfg)
			_, err := New(cfg.Logger, cfg)
			assert.Error(t, err)
		})
	}
}

func TestNew_DefaultShutdownTimeout(t *testing.T) {
	cfg := newTestConfig()
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultShutdownTimeout, srv.shutdownTimeout)
}

func TestHealthRoutes(t *testing.T) {
	cfg := newTestConfig()
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		t.Run(path, func(t *testing.T) {
			w := serve(t, srv, http.MethodGet, path)
			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Data map[string]string `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, status, resp.Data["status"])
			assert.Equal(t, ServiceName, resp.Data["service"])
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestReadyCheck_NotReady(t *testing.T) {
	cfg := newTestConfig()
	cfg.Readiness = func(context.Context) error { return errors.New("no LLM provider available") }
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	w := serve(t, srv, http.MethodGet, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "no LLM provider available", resp.Message)

	// Liveness is unaffected.
	assert.Equal(t, http.StatusOK, serve(t, srv, http.MethodGet, "/live").Code)
}

func TestDomainRoutes(t *testing.T) {
	cfg := newTestConfig()
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	w := serve(t, srv, http.MethodPost, "/api/v1/chat/goal")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "chat", w.Body.String())

	w = serve(t, srv, http.MethodPost, "/api/v1/goals/extract")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "extract", w.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(t, srv, http.MethodGet, "/api/v1/unknown").Code)
}

func TestRecovery_PanicAnswersInternalError(t *testing.T) {
	cfg := newTestConfig()
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)
	srv.Handler().GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := serve(t, srv, http.MethodGet, "/boom")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.InternalServerErrorCode, resp.ErrorCode)
	assert.Equal(t, response.DefaultErrorMessage, resp.Message)
	assert.NotContains(t, w.Body.String(), "kaboom")

	// The server keeps answering after a panic.
	assert.Equal(t, http.StatusOK, serve(t, srv, http.MethodGet, "/health").Code)
}

func TestMetricsRoute(t *testing.T) {
	t.Run("Served when a gatherer is configured", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "pdca_test_total", Help: "test"})
		reg.MustRegister(counter)
		counter.Inc()

		cfg := newTestConfig()
		cfg.Gatherer = reg
		srv, err := New(cfg.Logger, cfg)
		require.NoError(t, err)

		w := serve(t, srv, http.MethodGet, "/metrics")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pdca_test_total 1")
	})

	t.Run("Absent without a gatherer", func(t *testing.T) {
		cfg := newTestConfig()
		srv, err := New(cfg.Logger, cfg)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, serve(t, srv, http.MethodGet, "/metrics").Code)
	})
}

func TestSwaggerRoute_HiddenInProduction(t *testing.T) {
	cfg := newTestConfig()
	cfg.Environment = "production"
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, serve(t, srv, http.MethodGet, "/swagger/index.html").Code)
}

func TestRun_GracefulShutdown(t *testing.T) {
	cfg := newTestConfig()
	cfg.Port = freePort(t)
	cfg.ShutdownTimeout = time.Second
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
