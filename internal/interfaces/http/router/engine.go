package router

import (
	"github.com/gin-gonic/gin"
	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"github.com/hostel/backend/internal/interfaces/http/handler"
	"github.com/hostel/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// EngineConfig configures the gin engine and its global middleware
type EngineConfig struct {
	Logger    *zap.Logger
	HTTP      config.HTTPConfig
	Security  middleware.SecurityConfig
	Tracing   middleware.TracingConfig
	Profiling middleware.ProfilingConfig
	// Meter is nil when metrics are not exported
	Meter metric.Meter
}

// NewEngine creates a gin engine with the global middleware stack:
// request ID, panic recovery, tracing, request logging, metrics, profiling
// labels, security headers, CORS and the body size limit.
func NewEngine(cfg EngineConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(cfg.Tracing))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.AccessLog(log, "/health"))
	engine.Use(middleware.HTTPMetrics(cfg.Meter))
	engine.Use(middleware.Profiling(cfg.Profiling))
	engine.Use(middleware.Secure(cfg.Security))

	engine.Use(middleware.CORS(middleware.CORSConfigFromHTTP(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	return engine
}

// SystemRoutes mounts the unversioned endpoints: health and API docs
func SystemRoutes(engine *gin.Engine, health *handler.HealthHandler, swagger config.SwaggerConfig, swaggerAuth gin.HandlerFunc) {
	engine.GET("/health", health.Health)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(swagger, swaggerAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Mount registers the hostel API on the engine under /api/v1
func Mount(engine *gin.Engine, h Handlers, g Guards) API {
	api := API{Version: "v1", Groups: HostelRoutes(h, g)}
	api.Install(engine)
	return api
}
