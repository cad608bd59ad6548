package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	foodcartserver "github.com/foodcartapp/foodcart-api/server"

	catalogmemory "github.com/foodcartapp/foodcart-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/foodcartapp/foodcart-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/foodcartapp/foodcart-api/internal/domains/catalog/application"
	catalogports "github.com/foodcartapp/foodcart-api/internal/domains/catalog/ports"
	fulfillmentredis "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/adapters/cache/redis"
	fulfillmentobs "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/adapters/observability"
	fulfillmentapp "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/application"
	orderscatalog "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/memory"
	orderspostgres "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/foodcartapp/foodcart-api/internal/domains/orders/application"
	ordersports "github.com/foodcartapp/foodcart-api/internal/domains/orders/ports"
	"github.com/foodcartapp/foodcart-api/internal/platform/migrations"
	platformobservability "github.com/foodcartapp/foodcart-api/internal/platform/observability"
	platformpostgres "github.com/foodcartapp/foodcart-api/internal/platform/postgres"
)

// Run boots the food cart HTTP API with observability, repositories, caches,
// and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "foodcart-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := connectPostgres(ctx, cfg, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	catalogRepo := buildCatalogRepository(db, logger)
	ordersRepo, idempotencyStore := buildOrdersStores(db, logger)

	redisClient, cleanupRedis := connectRedis(ctx, cfg, logger)
	defer cleanupRedis()

	var menuCache *fulfillmentredis.MenuCache
	catalogService := catalogapp.NewService(
		catalogRepo,
		catalogapp.WithInvalidationHook(func(ctx context.Context) { menuCache.Invalidate(ctx) }),
	)
	menuCache = fulfillmentredis.NewMenuCache(catalogService, redisClient, cfg.AvailabilityCacheTTL)

	ordersService := ordersapp.NewService(
		ordersRepo,
		orderscatalog.NewResolver(catalogService),
		ordersapp.WithIdempotencyStore(idempotencyStore),
	)

	enrichmentService := fulfillmentobs.New(
		fulfillmentapp.NewService(menuCache, ordersRepo),
		fulfillmentobs.WithLogger(logger),
		fulfillmentobs.WithTracer(instruments.Tracer("internal.fulfillment.application")),
		fulfillmentobs.WithMeter(instruments.Meter("internal.fulfillment.application")),
	)

	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(ordersService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, registering orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := foodcartserver.ApiHandleFunctions{
		BannersAPI:  foodcartserver.NewBannersAPI(),
		ProductsAPI: foodcartserver.NewProductsAPI(catalogService),
		OrdersAPI:   foodcartserver.NewOrdersAPI(ordersService, orderWorkflows, enrichmentService),
	}

	router := foodcartserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("food cart API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("food cart API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func connectPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("postgres connection established")
	return db, func() { _ = sqlDB.Close() }
}

func buildCatalogRepository(db *gorm.DB, logger *slog.Logger) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	logger.Info("catalog repository configured with postgres")
	return catalogpostgres.NewRepository(db)
}

func buildOrdersStores(db *gorm.DB, logger *slog.Logger) (ordersports.Repository, ordersports.IdempotencyStore) {
	if db == nil {
		return ordersmemory.NewRepository(), ordersmemory.NewIdempotencyStore()
	}
	logger.Info("orders repository configured with postgres")
	return orderspostgres.NewRepository(db), orderspostgres.NewIdempotencyStore(db)
}

func connectRedis(ctx context.Context, cfg Config, logger *slog.Logger) (*goredis.Client, func()) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, availability snapshot cache disabled")
		return nil, func() {}
	}
	redisClient := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Warn("failed to ping redis, availability snapshot cache disabled", slog.String("error", err.Error()))
		_ = redisClient.Close()
		return nil, func() {}
	}
	logger.Info("availability snapshot cache enabled", slog.String("addr", cfg.RedisAddr))
	return redisClient, func() { _ = redisClient.Close() }
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
