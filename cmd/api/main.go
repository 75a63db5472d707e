// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/akarpov/grocery-be/internal/adapters/db"
	redis_a "github.com/akarpov/grocery-be/internal/adapters/redis_adapter"
	"github.com/akarpov/grocery-be/internal/core/ports"
	"github.com/akarpov/grocery-be/internal/core/services"
	"github.com/akarpov/grocery-be/internal/handlers"
	"github.com/akarpov/grocery-be/internal/handlers/middleware"
	"github.com/akarpov/grocery-be/internal/pkg/config"
	"github.com/akarpov/grocery-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	// Initialize structured logger
	l := logger.SetupLogger("debug", "json")
	slogger := l.Logger

	slogger.Info("starting grocery shopping backend",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	// Load configuration
	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	l = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = l.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	// Create application context
	ctx := context.Background()

	// Initialize dependencies
	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Run database migrations outside production
	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	// Setup HTTP server
	server := setupHTTPServer(cfg, deps, l)

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for shutdown signal or server error
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
	database       *db.Database
	redisClient    *redis.Client
	cache          ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	shopHandler     *handlers.ShopHandler
	itemHandler     *handlers.ItemHandler
	visitHandler    *handlers.VisitHandler
	purchaseHandler *handlers.PurchaseHandler
	listHandler     *handlers.ShoppingListHandler
	lineHandler     *handlers.ShoppingListItemHandler
	exportHandler   *handlers.ExportHandler
	healthHandler   *handlers.HealthHandler
	webHandler      *handlers.WebHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	// Initialize database connection
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
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	// Initialize Redis client
	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            cfg.GetRedisAddress(),
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

	deps.cache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	// Initialize Asynq client
	logger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Initialize repositories
	shopRepo := db.NewShopRepository(database, logger)
	itemRepo := db.NewItemRepository(database, logger)
	visitRepo := db.NewVisitRepository(database, logger)
	purchaseRepo := db.NewPurchaseRepository(database, logger)
	listRepo := db.NewShoppingListRepository(database, logger)
	lineRepo := db.NewShoppingListItemRepository(database, logger)

	// Initialize services
	shopService := services.NewShopService(shopRepo, logger)
	itemService := services.NewItemService(itemRepo, logger)
	listService := services.NewShoppingListService(listRepo, logger)
	visitService := services.NewVisitService(visitRepo, shopRepo, purchaseRepo, deps.cache, deps.asynqClient, logger)
	purchaseService := services.NewPurchaseService(purchaseRepo, visitRepo, itemRepo, logger)
	lineService := services.NewShoppingListItemService(lineRepo, listRepo, itemRepo, logger)

	// Initialize handlers
	deps.shopHandler = handlers.NewShopHandler(shopService, logger)
	deps.itemHandler = handlers.NewItemHandler(itemService, logger)
	deps.visitHandler = handlers.NewVisitHandler(visitService, logger)
	deps.purchaseHandler = handlers.NewPurchaseHandler(purchaseService, logger)
	deps.listHandler = handlers.NewShoppingListHandler(listService, logger)
	deps.lineHandler = handlers.NewShoppingListItemHandler(lineService, logger)
	deps.exportHandler = handlers.NewExportHandler(purchaseService, itemService, deps.cache, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, logger)
	deps.webHandler = handlers.NewWebHandler(
		database,
		deps.cache,
		shopService,
		itemService,
		visitService,
		purchaseService,
		listService,
		logger,
	)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, l *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux

	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(l)(handler)
		handler = middleware.Recovery(l.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(l.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)

	// Shop endpoints
	mux.HandleFunc("GET "+apiV1+"/shop", deps.shopHandler.List)
	mux.HandleFunc("GET "+apiV1+"/shop/list", deps.shopHandler.ListPage)
	mux.HandleFunc("GET "+apiV1+"/shop/search", deps.shopHandler.Search)
	mux.HandleFunc("GET "+apiV1+"/shop/{id}", deps.shopHandler.Get)
	mux.HandleFunc("POST "+apiV1+"/shop", deps.shopHandler.Create)
	mux.HandleFunc("POST "+apiV1+"/shop/{id}", deps.shopHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/shop/{id}", deps.shopHandler.Delete)

	// Item endpoints
	mux.HandleFunc("GET "+apiV1+"/item", deps.itemHandler.List)
	mux.HandleFunc("GET "+apiV1+"/item/list", deps.itemHandler.ListPage)
	mux.HandleFunc("GET "+apiV1+"/item/search", deps.itemHandler.Search)
	mux.HandleFunc("GET "+apiV1+"/item/{id}", deps.itemHandler.Get)
	mux.HandleFunc("POST "+apiV1+"/item", deps.itemHandler.Create)
	mux.HandleFunc("POST "+apiV1+"/item/{id}", deps.itemHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/item/{id}", deps.itemHandler.Delete)

	// Shopping list endpoints
	mux.HandleFunc("GET "+apiV1+"/shopping_list", deps.listHandler.List)
	mux.HandleFunc("GET "+apiV1+"/shopping_list/list", deps.listHandler.ListPage)
	mux.HandleFunc("GET "+apiV1+"/shopping_list/search", deps.listHandler.Search)
	mux.HandleFunc("GET "+apiV1+"/shopping_list/{id}", deps.listHandler.Get)
	mux.HandleFunc("POST "+apiV1+"/shopping_list", deps.listHandler.Create)
	mux.HandleFunc("POST "+apiV1+"/shopping_list/{id}", deps.listHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/shopping_list/{id}", deps.listHandler.Delete)

	// Shopping list line endpoints
	mux.HandleFunc("POST "+apiV1+"/shopping_list_item", deps.lineHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/shopping_list_item/{shoppingListId}", deps.lineHandler.List)
	mux.HandleFunc("GET "+apiV1+"/shopping_list_item/{shoppingListId}/list", deps.lineHandler.ListPage)
	mux.HandleFunc("GET "+apiV1+"/shopping_list_item/{shoppingListId}/not_added", deps.lineHandler.NotAddedItems)
	mux.HandleFunc("POST "+apiV1+"/shopping_list_item/{id}", deps.lineHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/shopping_list_item/{id}", deps.lineHandler.Delete)

	// Visit endpoints
	mux.HandleFunc("GET "+apiV1+"/visit", deps.visitHandler.List)
	mux.HandleFunc("GET "+apiV1+"/visit/list", deps.visitHandler.ListPage)
	mux.HandleFunc("GET "+apiV1+"/visit/shop/{shopId}", deps.visitHandler.ListByShop)
	mux.HandleFunc("POST "+apiV1+"/visit/shop/{shopId}", deps.visitHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/visit/{id}", deps.visitHandler.Get)
	mux.HandleFunc("POST "+apiV1+"/visit/{id}/start", deps.visitHandler.Start)
	mux.HandleFunc("POST "+apiV1+"/visit/{id}/complete", deps.visitHandler.Complete)
	mux.HandleFunc("DELETE "+apiV1+"/visit/{id}", deps.visitHandler.Delete)
	mux.HandleFunc("GET "+apiV1+"/visit/{id}/summary", deps.visitHandler.Summary)

	// Purchase endpoints
	mux.HandleFunc("GET "+apiV1+"/purchase/{visitId}/not_purchased_items", deps.purchaseHandler.NotPurchasedItems)
	mux.HandleFunc("GET "+apiV1+"/purchase/{visitId}/list", deps.purchaseHandler.ListPage)
	mux.HandleFunc("POST "+apiV1+"/purchase/{visitId}/buy/{itemId}", deps.purchaseHandler.Buy)
	mux.HandleFunc("POST "+apiV1+"/purchase/{visitId}/return/{itemId}", deps.purchaseHandler.Return)
	mux.HandleFunc("POST "+apiV1+"/purchase/{visitId}/price/{itemId}", deps.purchaseHandler.UpdatePrice)
	mux.HandleFunc("GET "+apiV1+"/purchase/{visitId}/export/excel", deps.exportHandler.ExportExcel)
	mux.HandleFunc("GET "+apiV1+"/purchase/{visitId}/export/json", deps.exportHandler.ExportJSON)

	// Server-rendered pages
	mux.HandleFunc("GET /{$}", deps.webHandler.Index)
	mux.HandleFunc("GET /shop", deps.webHandler.Shops)
	mux.HandleFunc("GET /item", deps.webHandler.Items)
	mux.HandleFunc("GET /visit", deps.webHandler.Visits)
	mux.HandleFunc("GET /purchase/{visitId}", deps.webHandler.Purchases)
	mux.HandleFunc("GET /shopping_list", deps.webHandler.ShoppingLists)

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
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
