package server

import (
	"github.com/gin-gonic/gin"

	"ai-processor/internal/categorize"
	"ai-processor/internal/materials"
	"ai-processor/internal/recommendations"
	"ai-processor/internal/services/health"
	"ai-processor/internal/shared/config"
	"ai-processor/internal/shared/metrics"
	"ai-processor/internal/shared/server/middleware"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(middleware.RateLimitRule{
			Rate:  cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		}, nil)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
		middleware.RateLimit(limiter),
	)

	// Dependencies
	engine := categorize.NewDefaultEngine()
	pipeline := materials.NewPipeline(engine)

	health.NewService().RegisterRoutes(r)
	materials.NewHandler(pipeline, cfg.MaxBatchSize).RegisterRoutes(r)
	recommendations.NewHandler().RegisterRoutes(r)
	categorize.NewHandler(engine, cfg.MaxBatchSize).RegisterRoutes(r)
	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5001"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
