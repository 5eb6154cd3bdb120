// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/body-recomp/backend/config"
	"github.com/body-recomp/backend/internal/application/usecase/auth"
	"github.com/body-recomp/backend/internal/application/usecase/goal"
	"github.com/body-recomp/backend/internal/application/usecase/measurement"
	"github.com/body-recomp/backend/internal/application/usecase/plan"
	"github.com/body-recomp/backend/internal/application/usecase/progress"
	"github.com/body-recomp/backend/internal/application/usecase/user"
	"github.com/body-recomp/backend/internal/infra/server/router"
	"github.com/body-recomp/backend/internal/integration/adapters"
	"github.com/body-recomp/backend/internal/integration/entrypoint/controller"
	"github.com/body-recomp/backend/internal/integration/entrypoint/middleware"
	"github.com/body-recomp/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	measurementRepo := persistence.NewMeasurementRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	progressRepo := persistence.NewProgressRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	energyCache := adapters.NewRedisEnergyCache(redisClient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create profile use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)

	// Create measurement use cases
	createMeasurementUseCase := measurement.NewCreateMeasurementUseCase(measurementRepo, userRepo)
	getMeasurementUseCase := measurement.NewGetMeasurementUseCase(measurementRepo)
	listMeasurementsUseCase := measurement.NewListMeasurementsUseCase(measurementRepo)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, measurementRepo, userRepo, energyCache)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	cancelGoalUseCase := goal.NewCancelGoalUseCase(goalRepo)

	// Create progress use cases
	logProgressUseCase := progress.NewLogProgressUseCase(goalRepo, measurementRepo, progressRepo)
	listProgressUseCase := progress.NewListProgressUseCase(goalRepo, progressRepo)
	getTrendsUseCase := progress.NewGetTrendsUseCase(goalRepo, progressRepo)

	// Create plan use cases
	trainingPlanUseCase := plan.NewGetTrainingPlanUseCase(goalRepo)
	dietPlanUseCase := plan.NewGetDietPlanUseCase(goalRepo, measurementRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
	)

	measurementController := controller.NewMeasurementController(
		createMeasurementUseCase,
		getMeasurementUseCase,
		listMeasurementsUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		getGoalUseCase,
		listGoalsUseCase,
		cancelGoalUseCase,
	)

	progressController := controller.NewProgressController(
		logProgressUseCase,
		listProgressUseCase,
		getTrendsUseCase,
	)

	planController := controller.NewPlanController(
		trainingPlanUseCase,
		dietPlanUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		measurementController,
		goalController,
		progressController,
		planController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
