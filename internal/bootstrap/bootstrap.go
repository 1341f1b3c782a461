package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/majorpath/internal/app/controllers"
	appMigrations "github.com/yigit/majorpath/internal/app/migrations"
	appRepos "github.com/yigit/majorpath/internal/app/repositories"
	appRoutes "github.com/yigit/majorpath/internal/app/routes"
	appServices "github.com/yigit/majorpath/internal/app/services"
	"github.com/yigit/majorpath/internal/config"
	"github.com/yigit/majorpath/internal/db"
	appMiddleware "github.com/yigit/majorpath/internal/middleware"
	pkgAuth "github.com/yigit/majorpath/internal/pkg/auth"
	"github.com/yigit/majorpath/internal/pkg/classifier"
	"github.com/yigit/majorpath/internal/pkg/logger"
	"github.com/yigit/majorpath/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	PredictionService appServices.PredictionService
	SessionService    appServices.SessionService
	MajorService      appServices.MajorService
	AuthService       appServices.AuthService
	Controllers       *appControllers.Controllers
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Invoker           *classifier.Invoker
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: "majorpath",
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the majors catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Migrations.Dir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	applied, err := migrator.MigrateFromDirectory(context.Background(), migrationsDir)
	if err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		// A partial seed is logged; lookups of missing majors answer 404
		if err := seed.SeedMajors(context.Background(), appRepos.NewMajorRepository(database.Pool), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed majors, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	runner := classifier.NewProcessRunner(classifier.ProcessConfig{
		Binary:         cfg.Classifier.PythonBin,
		Args:           cfg.ClassifierArgs(),
		Dir:            cfg.Classifier.WorkDir,
		MaxOutputBytes: cfg.Classifier.MaxOutputBytes,
	}, lgr)
	deps.Invoker = classifier.NewInvoker(runner, classifier.InvokerConfig{
		Timeout:          cfg.Classifier.Timeout,
		MaxConcurrent:    cfg.Classifier.MaxConcurrent,
		FailureThreshold: cfg.Classifier.Breaker.FailureThreshold,
		OpenTimeout:      cfg.Classifier.Breaker.OpenTimeout,
	}, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.PredictionService = appServices.NewPredictionService(deps.Invoker, lgr)
	deps.SessionService = appServices.NewSessionService(deps.Repos.SessionRepository, lgr)
	deps.MajorService = appServices.NewMajorService(deps.Repos.MajorRepository)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = &appControllers.Controllers{
		Auth:    appControllers.NewAuthController(deps.AuthService, lgr),
		User:    appControllers.NewUserController(deps.AuthService),
		Predict: appControllers.NewPredictController(deps.PredictionService),
		Session: appControllers.NewSessionController(deps.SessionService),
		Major:   appControllers.NewMajorController(deps.MajorService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.Server.CORSOrigins))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.Invoker)

	return router
}
