package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/oguzk/fitpulse/internal/app/controllers"
	appMigrations "github.com/oguzk/fitpulse/internal/app/migrations"
	appRepos "github.com/oguzk/fitpulse/internal/app/repositories"
	appRoutes "github.com/oguzk/fitpulse/internal/app/routes"
	appServices "github.com/oguzk/fitpulse/internal/app/services"
	"github.com/oguzk/fitpulse/internal/config"
	"github.com/oguzk/fitpulse/internal/db"
	appMiddleware "github.com/oguzk/fitpulse/internal/middleware"
	pkgAuth "github.com/oguzk/fitpulse/internal/pkg/auth"
	"github.com/oguzk/fitpulse/internal/pkg/helpers"
	"github.com/oguzk/fitpulse/internal/pkg/logger"
	"github.com/oguzk/fitpulse/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services               *appServices.Services
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	GymController          *appControllers.GymController
	ExerciseController     *appControllers.ExerciseController
	ChallengeController    *appControllers.ChallengeController
	WorkoutController      *appControllers.WorkoutController
	NotificationController *appControllers.NotificationController
	BadgeController        *appControllers.BadgeController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrator := appMigrations.NewMigrator(dbPool)
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	if err := seed.CreateDefaultData(seedCtx, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default data")
		dbPool.Close()
		return nil, err
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	repos := appRepos.NewRepositories(dbPool)
	services := appServices.NewServices(repos, jwtService, lgr)

	return &Dependencies{
		Services:               services,
		Repos:                  repos,
		JWTService:             jwtService,
		AuthController:         appControllers.NewAuthController(services.AuthService),
		UserController:         appControllers.NewUserController(services.UserService),
		GymController:          appControllers.NewGymController(services.GymService),
		ExerciseController:     appControllers.NewExerciseController(services.ExerciseService),
		ChallengeController:    appControllers.NewChallengeController(services.ChallengeService),
		WorkoutController:      appControllers.NewWorkoutController(services.WorkoutService),
		NotificationController: appControllers.NewNotificationController(services.NotificationService),
		BadgeController:        appControllers.NewBadgeController(services.BadgeService),
		AuthMiddleware:         appMiddleware.NewAuthMiddleware(jwtService, repos.UserRepository),
		Logger:                 lgr,
	}, nil
}

// SetupRouter builds the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.GymController,
		deps.ExerciseController,
		deps.ChallengeController,
		deps.WorkoutController,
		deps.NotificationController,
		deps.BadgeController,
		deps.AuthMiddleware,
	)

	return router
}
