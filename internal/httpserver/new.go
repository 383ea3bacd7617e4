package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	goalchatHTTP "pdca-planner/internal/goalchat/delivery/http"
	"pdca-planner/internal/middleware"
	"pdca-planner/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Shared middleware
	mw middleware.Middleware

	// Metrics exposed on /metrics
	gatherer prometheus.Gatherer

	readiness func(ctx context.Context) error

	// Goal chat domain
	goalChatHandler goalchatHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware

	// Gatherer backs /metrics. The route is skipped when nil.
	Gatherer prometheus.Gatherer

	// Readiness decides /ready. Nil means always ready.
	Readiness func(ctx context.Context) error

	// Goal chat domain
	GoalChatHandler goalchatHTTP.Handler
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		gatherer:        cfg.Gatherer,
		readiness:       cfg.Readiness,
		goalChatHandler: cfg.GoalChatHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.goalChatHandler == nil {
		return errors.New("goal chat handler is required")
	}
	return nil
}
