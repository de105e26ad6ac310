package router

import (
	"covid-hospital-backend/internal/config"
	"covid-hospital-backend/internal/handler"
	"covid-hospital-backend/internal/metrics"
	"covid-hospital-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Hospital    *handler.HospitalHandler
	GlobalCount *handler.GlobalCountHandler
	Health      *handler.HealthHandler
}

// New builds the gin engine with middleware and all routes
func New(cfg *config.Config, h Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg))

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	h.Hospital.Register(r.Group("/hospitals"))
	h.GlobalCount.Register(r.Group("/counts/global"))

	return r
}
