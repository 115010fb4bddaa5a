// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/hotel-ops/backend/internal/integration/entrypoint/controller"
	"github.com/hotel-ops/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	reportController  *controller.ReportController
	reportRateLimiter *middleware.RateLimiter
	operatorIdentity  *middleware.OperatorIdentity
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	reportController *controller.ReportController,
	reportRateLimiter *middleware.RateLimiter,
	operatorIdentity *middleware.OperatorIdentity,
) *Router {
	return &Router{
		healthController:  healthController,
		reportController:  reportController,
		reportRateLimiter: reportRateLimiter,
		operatorIdentity:  operatorIdentity,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.reportController != nil {
			reports := v1.Group("/reports")
			if r.operatorIdentity != nil {
				reports.Use(r.operatorIdentity.Resolve())
			}
			if r.reportRateLimiter != nil {
				reports.Use(r.reportRateLimiter.Middleware())
			}
			{
				reports.POST("/shifts", r.reportController.GenerateShiftReport)
			}
		}
	}
}
