// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/body-recomp/backend/internal/integration/entrypoint/controller"
	"github.com/body-recomp/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	measurementController *controller.MeasurementController
	goalController        *controller.GoalController
	progressController    *controller.ProgressController
	planController        *controller.PlanController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	measurementController *controller.MeasurementController,
	goalController *controller.GoalController,
	progressController *controller.ProgressController,
	planController *controller.PlanController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		measurementController: measurementController,
		goalController:        goalController,
		progressController:    progressController,
		planController:        planController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Profile routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetProfile)
				users.PATCH("/me", r.userController.UpdateProfile)
			}
		}

		// Measurement routes (require authentication)
		if r.measurementController != nil && r.authMiddleware != nil {
			measurements := v1.Group("/measurements")
			measurements.Use(r.authMiddleware.Authenticate())
			{
				measurements.POST("", r.measurementController.Create)
				measurements.GET("", r.measurementController.List)
				measurements.GET("/:id", r.measurementController.Get)
			}
		}

		// Goal lifecycle, progress ledger and plan routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.POST("", r.goalController.Create)
				goals.GET("", r.goalController.List)
				goals.GET("/:id", r.goalController.Get)
				goals.POST("/:id/cancel", r.goalController.Cancel)

				if r.progressController != nil {
					goals.POST("/:id/progress", r.progressController.Log)
					goals.GET("/:id/progress", r.progressController.List)
					goals.GET("/:id/trends", r.progressController.Trends)
				}

				if r.planController != nil {
					goals.GET("/:id/training-plan", r.planController.TrainingPlan)
					goals.GET("/:id/diet-plan", r.planController.DietPlan)
				}
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
