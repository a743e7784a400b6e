package routes

import (
	"context"

	"technician-board/internal/api/handlers"
	"technician-board/internal/api/middleware"
	"technician-board/internal/config"
	"technician-board/internal/metrics"
	"technician-board/internal/ratelimit"
	"technician-board/internal/repository"
	"technician-board/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies carries optional infrastructure shared by the routes
type Dependencies struct {
	// Redis enables PIN attempt limiting when non-nil
	Redis *redis.Client
	// Registry backs /metrics; nil disables metrics collection
	Registry *prometheus.Registry
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	var m *metrics.Metrics
	if cfg.MetricsEnabled && deps.Registry != nil {
		m = metrics.New(deps.Registry)
	}

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(m))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	assignmentRepo := repository.NewAssignmentRepository(db)

	// Initialize services
	var limiter service.AttemptLimiter
	if deps.Redis != nil && cfg.PinRateLimitEnabled() {
		limiter = ratelimit.NewPinLimiter(deps.Redis, cfg.PinRateLimit, cfg.PinRateWindow)
	}
	assignmentService := service.NewAssignmentService(assignmentRepo, validator, m)
	pinService := service.NewPinService(cfg.EditPin, limiter, m)

	// Initialize handlers
	checks := map[string]handlers.HealthCheck{
		"database": assignmentRepo.Ping,
	}
	if deps.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return deps.Redis.Ping(ctx).Err()
		}
	}
	healthHandler := handlers.NewHealthHandler(checks)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, pinService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if m != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// Board API
	api := router.Group("/api")
	{
		api.POST("/verify-pin", assignmentHandler.VerifyPin)
		api.GET("/assignments", assignmentHandler.GetAssignments)
		api.POST("/move-technician", assignmentHandler.MoveTechnician)
		api.GET("/audit-log", assignmentHandler.GetAuditLog)
	}

	return router
}
