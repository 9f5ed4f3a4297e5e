package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusrate/campusrate/internal/app/controllers"
	appMigrations "github.com/campusrate/campusrate/internal/app/migrations"
	appRepos "github.com/campusrate/campusrate/internal/app/repositories"
	appRoutes "github.com/campusrate/campusrate/internal/app/routes"
	appServices "github.com/campusrate/campusrate/internal/app/services"
	"github.com/campusrate/campusrate/internal/config"
	"github.com/campusrate/campusrate/internal/db"
	appMiddleware "github.com/campusrate/campusrate/internal/middleware"
	pkgAuth "github.com/campusrate/campusrate/internal/pkg/auth"
	"github.com/campusrate/campusrate/internal/pkg/helpers"
	"github.com/campusrate/campusrate/internal/pkg/logger"
	"github.com/campusrate/campusrate/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	FilterService        appServices.FilterService
	InstructorService    appServices.InstructorService
	RatingService        appServices.RatingService
	FilterController     *appControllers.FilterController
	InstructorController *appControllers.InstructorController
	RatingController     *appControllers.RatingController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the instructor directory on first run.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	queryTimeout := helpers.ParseDuration(cfg.Database.QueryTimeout, 5*time.Second)
	if err := seed.CreateDefaultData(context.Background(), dbPool, queryTimeout, lgr); err != nil {
		// A failed seed leaves an empty directory but the API still works
		lgr.Error().Err(err).Msg("Failed to seed instructor directory, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool,
		helpers.ParseDuration(cfg.Database.QueryTimeout, 5*time.Second))

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.Moderation.TokenSecret,
		TokenExpiration: helpers.ParseDuration(cfg.Moderation.TokenExpiration, 12*time.Hour),
		TokenIssuer:     cfg.Moderation.TokenIssuer,
	})

	deps.FilterService = appServices.NewFilterService(deps.Repos.InstructorRepository)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.InstructorRepository, deps.Repos.RatingRepository)
	deps.RatingService = appServices.NewRatingService(deps.Repos.RatingRepository, deps.Repos.InstructorRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.FilterController = appControllers.NewFilterController(deps.FilterService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.RatingController = appControllers.NewRatingController(deps.RatingService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.FilterController,
		deps.InstructorController,
		deps.RatingController,
		deps.AuthMiddleware,
	)

	return router
}
