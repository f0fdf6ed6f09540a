// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/ldelaney/tradestock-be/internal/adapters/db"
	redis_a "github.com/ldelaney/tradestock-be/internal/adapters/redis_adapter"
	"github.com/ldelaney/tradestock-be/internal/core/ports"
	"github.com/ldelaney/tradestock-be/internal/core/services"
	"github.com/ldelaney/tradestock-be/internal/handlers"
	"github.com/ldelaney/tradestock-be/internal/handlers/middleware"
	"github.com/ldelaney/tradestock-be/internal/pkg/config"
	"github.com/ldelaney/tradestock-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting commodity inventory tracking API",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if !cfg.IsProduction() {
		if err := runMigrations(ctx, cfg, slogger.Logger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Keep serving in development; the schema may already be current
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database         *db.Database
	redisClient      *redis.Client
	redisCache       ports.CacheRepository
	cacheManager     *redis_a.CacheManager
	inventoryService *services.InventoryService
	catalogService   *services.CatalogService
	inventoryHandler *handlers.InventoryHandler
	catalogHandler   *handlers.CatalogHandler
	exportHandler    *handlers.ExportHandler
	healthHandler    *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)
	deps.cacheManager = redis_a.NewCacheManager(deps.redisCache, logger)

	// Repositories
	movementRepo := db.NewMovementRepository(database, logger)
	historyRepo := db.NewHistoryRepository(database, logger)
	commodityRepo := db.NewCommodityRepository(database, logger)
	partnerRepo := db.NewTradePartnerRepository(database, logger)

	// Services
	deps.inventoryService = services.NewInventoryService(movementRepo, historyRepo, commodityRepo, database, logger)
	deps.catalogService = services.NewCatalogService(partnerRepo, commodityRepo, logger)

	// Handlers
	deps.inventoryHandler = handlers.NewInventoryHandler(deps.inventoryService, deps.redisCache, deps.cacheManager, logger)
	deps.catalogHandler = handlers.NewCatalogHandler(deps.catalogService, deps.cacheManager, logger)
	deps.exportHandler = handlers.NewExportHandler(deps.inventoryService, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Middleware chain, innermost first
	var handler http.Handler = mux
	handler = middleware.Actor(cfg.Security.ActorIDHeader)(handler)
	handler = middleware.Logger(slogger)(handler)
	handler = middleware.Recovery(slogger.Logger)(handler)
	handler = middleware.RequestID(handler)

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies) {
	apiV1 := "/api/v1"

	// Health and readiness
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)

	// Movement endpoints. Literal segments before the {id} wildcard.
	mux.HandleFunc("GET "+apiV1+"/inventories", deps.inventoryHandler.ListInventory)
	mux.HandleFunc("POST "+apiV1+"/inventories", deps.inventoryHandler.CreateInventory)
	mux.HandleFunc("GET "+apiV1+"/inventories/summary", deps.inventoryHandler.GetSummary)
	mux.HandleFunc("GET "+apiV1+"/inventories/glutted", deps.inventoryHandler.GetGlutted)
	mux.HandleFunc("GET "+apiV1+"/inventories/history", deps.inventoryHandler.GetHistory)
	mux.HandleFunc("GET "+apiV1+"/inventories/{id}", deps.inventoryHandler.GetInventory)
	mux.HandleFunc("PUT "+apiV1+"/inventories/{id}", deps.inventoryHandler.UpdateInventory)
	mux.HandleFunc("DELETE "+apiV1+"/inventories/{id}", deps.inventoryHandler.DeleteInventory)

	// Catalog endpoints
	mux.HandleFunc("GET "+apiV1+"/trade-partners", deps.catalogHandler.ListPartners)
	mux.HandleFunc("POST "+apiV1+"/trade-partners", deps.catalogHandler.CreatePartner)
	mux.HandleFunc("GET "+apiV1+"/trade-partners/{id}", deps.catalogHandler.GetPartner)
	mux.HandleFunc("PUT "+apiV1+"/trade-partners/{id}", deps.catalogHandler.UpdatePartner)
	mux.HandleFunc("DELETE "+apiV1+"/trade-partners/{id}", deps.catalogHandler.DeletePartner)

	mux.HandleFunc("GET "+apiV1+"/commodities", deps.catalogHandler.ListCommodities)
	mux.HandleFunc("POST "+apiV1+"/commodities", deps.catalogHandler.CreateCommodity)
	mux.HandleFunc("GET "+apiV1+"/commodities/{id}", deps.catalogHandler.GetCommodity)
	mux.HandleFunc("PUT "+apiV1+"/commodities/{id}", deps.catalogHandler.UpdateCommodity)
	mux.HandleFunc("DELETE "+apiV1+"/commodities/{id}", deps.catalogHandler.DeleteCommodity)

	// Export
	mux.HandleFunc("GET "+apiV1+"/export/summary.xlsx", deps.exportHandler.ExportSummaryExcel)
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
