package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	appAuth "github.com/mskustudx/studx/internal/app/auth"
	appControllers "github.com/mskustudx/studx/internal/app/controllers"
	"github.com/mskustudx/studx/internal/app/models"
	appRepos "github.com/mskustudx/studx/internal/app/repositories"
	appRoutes "github.com/mskustudx/studx/internal/app/routes"
	appServices "github.com/mskustudx/studx/internal/app/services"
	"github.com/mskustudx/studx/internal/config"
	"github.com/mskustudx/studx/internal/db"
	appMiddleware "github.com/mskustudx/studx/internal/middleware"
	"github.com/mskustudx/studx/internal/persistence"
	pkgAuth "github.com/mskustudx/studx/internal/pkg/auth"
	"github.com/mskustudx/studx/internal/pkg/livefeed"
	"github.com/mskustudx/studx/internal/pkg/logger"
	"github.com/mskustudx/studx/internal/pkg/metrics"
	"github.com/mskustudx/studx/internal/pkg/validation"
	"github.com/mskustudx/studx/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Gateway        *persistence.Gateway
	Hub            *livefeed.Hub
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))

	lgr := logger.Get()
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Str("storage", cfg.Storage.Driver).
		Strs("envOverrides", cfg.EnvOverrides).
		Msg("Configuration loaded")
	return cfg, lgr, nil
}

// OpenSnapshotStore connects the configured snapshot backend. The postgres
// backend has its schema migrated before use.
func OpenSnapshotStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (persistence.Store, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		lgr.Info().Msg("Establishing database connection...")
		pool, err := db.NewPostgresPool(ctx, db.PoolConfig{
			DSN:      cfg.Storage.PostgresDSN,
			MaxConns: cfg.Storage.MaxOpenConns,
			Timeout:  cfg.StorageTimeout(),
		})
		if err != nil {
			return nil, err
		}

		if err := db.NewMigrator(pool).Migrate(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")
		return persistence.NewPostgresStore(pool), nil

	case config.StorageRedis:
		pingCtx, cancel := context.WithTimeout(ctx, cfg.StorageTimeout())
		defer cancel()
		return persistence.NewRedisStore(pingCtx, persistence.RedisConfig{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
			Key:      cfg.Storage.RedisKey,
		})

	default:
		return persistence.NewFileStore(cfg.Storage.Path), nil
	}
}

// BuildDependencies loads the seed catalog and the user snapshot, then wires
// repositories, services and controllers
func BuildDependencies(ctx context.Context, cfg *config.Config, store persistence.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterRules(v); err != nil {
			return nil, err
		}
	}

	catalog, err := seed.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed catalog: %w", err)
	}

	deps.Gateway = persistence.NewGateway(store, lgr, cfg.StorageTimeout())
	users, err := deps.Gateway.Initialize(ctx, func() ([]*models.User, error) {
		return catalog.DefaultUsers(pkgAuth.HashPassword, time.Now().UTC())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize users: %w", err)
	}

	deps.Repos = appRepos.NewRepositories(catalog, users, deps.Gateway)

	if cfg.JWT.Enabled {
		deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
			SecretKey:      cfg.JWT.Secret,
			AccessTokenExp: cfg.AccessTokenTTL(),
			TokenIssuer:    cfg.JWT.Issuer,
		})
	}
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Hub = livefeed.NewHub(lgr)

	deps.Services = appServices.NewServices(deps.Repos, appServices.Deps{
		JWT:    deps.JWTService,
		Feed:   deps.Hub,
		Logger: lgr,
	})

	svc := deps.Services
	authorizer := appAuth.NewAuthorizationService(deps.Repos.UserRepository)
	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(svc.AuthService),
		Catalog:  appControllers.NewCatalogController(svc.CatalogService),
		Material: appControllers.NewMaterialController(authorizer, svc.MaterialService, svc.VoteService),
		User:     appControllers.NewUserController(authorizer, svc.AuthService, svc.EngagementService, svc.VoteService),
		Health:   appControllers.NewHealthController(deps.Repos.UserRepository, store.Name()),
		LiveFeed: livefeed.NewHandler(deps.Hub, deps.Repos.CatalogRepository, lgr).HandleConnection,
	}

	lgr.Info().
		Int("faculties", len(catalog.Faculties)).
		Int("courses", len(catalog.Courses)).
		Int("materials", len(catalog.Materials)).
		Int("users", deps.Repos.UserRepository.Count()).
		Msg("Dependencies ready")
	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(deps.Logger))

	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router
}

// WithCORS applies the configured origin policy for browser clients
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})(h)
}
