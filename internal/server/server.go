// Package server wires configuration, logging, metrics, the provider
// registry and the gin router into a runnable HTTP service.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BenjaminEHowe/transmaths/internal/config"
	apihttp "github.com/BenjaminEHowe/transmaths/internal/http"
	"github.com/BenjaminEHowe/transmaths/internal/logging"
	"github.com/BenjaminEHowe/transmaths/internal/middleware"
	"github.com/BenjaminEHowe/transmaths/internal/monitoring"
	"github.com/BenjaminEHowe/transmaths/internal/providers/transmaths"
	"github.com/BenjaminEHowe/transmaths/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	httpSrv  *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	registry := service.NewRegistry()
	if err := registry.Register(transmaths.NewProvider()); err != nil {
		return nil, err
	}
	logger.Info("registered service providers", zap.Any("stats", registry.Stats()))

	metrics := monitoring.NewMetrics()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.RequestLogger(logger))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &Server{
		router:   router,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		httpSrv: &http.Server{
			Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}, nil
}

// Router exposes the gin engine, primarily for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server and blocks until it stops
func (s *Server) Run() error {
	s.logger.Info("starting transmaths service", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down transmaths service")
	return s.httpSrv.Shutdown(ctx)
}
