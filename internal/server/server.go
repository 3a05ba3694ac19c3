package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/api/middleware"
	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/generation"
	"github.com/projectforge/forge/internal/infrastructure/config"
	"github.com/projectforge/forge/internal/infrastructure/monitoring"
	"github.com/projectforge/forge/internal/orchestrator"
	"github.com/projectforge/forge/internal/ws"
)

// Deps are the wired components the server exposes over HTTP.
type Deps struct {
	Service      *generation.Service
	Orchestrator *orchestrator.Orchestrator
	Normalizer   *blueprint.Normalizer
	Metrics      *monitoring.Metrics
	Logger       *zap.Logger
}

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server

	svc     *generation.Service
	orch    *orchestrator.Orchestrator
	norm    *blueprint.Normalizer
	metrics *monitoring.Metrics
	log     *zap.Logger

	stopRateLimit func()
}

// New creates a server with routes and middleware registered.
func New(cfg *config.Config, deps Deps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		svc:     deps.Service,
		orch:    deps.Orchestrator,
		norm:    deps.Normalizer,
		metrics: deps.Metrics,
		log:     log,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		limit, stop := middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		})
		router.Use(limit)
		s.stopRateLimit = stop
	}
	if s.metrics != nil {
		router.Use(monitoring.Middleware(s.metrics))
	}

	router.GET("/", s.root)
	router.GET("/health", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/agents", s.listAgents)
		v1.POST("/blueprint/normalize", s.normalizeBlueprint)
		v1.POST("/generate", s.generate)
	}

	wsHandler := ws.NewHandler(s.svc, s.metrics, log)
	router.GET("/ws", wsHandler.HandleConnection)

	s.router = router
	s.http = &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}
	return s
}

// Router exposes the underlying gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves HTTP until ctx is canceled, then drains in-flight requests
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	if s.stopRateLimit != nil {
		s.stopRateLimit()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
