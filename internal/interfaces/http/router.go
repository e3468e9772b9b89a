// Package http wires the gin route tree and the HTTP server around the
// estimation API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/prometheus"
	"github.com/solventworks/hansen/internal/interfaces/http/handlers"
	"github.com/solventworks/hansen/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and infrastructure dependencies needed
// to construct the route tree.
type RouterConfig struct {
	EstimateHandler *handlers.EstimateHandler
	HealthHandler   *handlers.HealthHandler

	Logger  logging.Logger
	Metrics *prometheus.Metrics
	Mode    string
}

// NewRouter constructs the complete route tree as a single http.Handler.
func NewRouter(cfg RouterConfig) http.Handler {
	switch cfg.Mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogger(cfg.Logger))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	if cfg.EstimateHandler != nil {
		api.POST("/estimates", cfg.EstimateHandler.Create)
		api.POST("/distance", cfg.EstimateHandler.Distance)
	}

	return r
}
