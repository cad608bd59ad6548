package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"gorm.io/gorm"

	catalogmemory "github.com/foodcartapp/foodcart-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/foodcartapp/foodcart-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/foodcartapp/foodcart-api/internal/domains/catalog/application"
	catalogports "github.com/foodcartapp/foodcart-api/internal/domains/catalog/ports"
	orderscatalog "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/memory"
	orderspostgres "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/foodcartapp/foodcart-api/internal/domains/orders/application"
	ordersports "github.com/foodcartapp/foodcart-api/internal/domains/orders/ports"
	"github.com/foodcartapp/foodcart-api/internal/platform/migrations"
	platformobservability "github.com/foodcartapp/foodcart-api/internal/platform/observability"
	platformpostgres "github.com/foodcartapp/foodcart-api/internal/platform/postgres"
	orderactivities "github.com/foodcartapp/foodcart-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/foodcartapp/foodcart-api/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "foodcart-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			logger.Error("failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	ordersService := buildOrdersService(db, logger)
	orderActivities := orderactivities.NewActivities(ordersService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderRegistrationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderRegistrationWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderRegistrationWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.RegisterOrder, activity.RegisterOptions{Name: orderactivities.RegisterOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderRegistrationTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildOrdersService(db *gorm.DB, logger *slog.Logger) ordersports.Service {
	var catalogRepo catalogports.Repository
	var ordersRepo ordersports.Repository
	var idempotencyStore ordersports.IdempotencyStore
	if db == nil {
		catalogRepo = catalogmemory.NewRepository()
		ordersRepo = ordersmemory.NewRepository()
		idempotencyStore = ordersmemory.NewIdempotencyStore()
	} else {
		logger.Info("worker repositories configured with postgres")
		catalogRepo = catalogpostgres.NewRepository(db)
		ordersRepo = orderspostgres.NewRepository(db)
		idempotencyStore = orderspostgres.NewIdempotencyStore(db)
	}
	catalogService := catalogapp.NewService(catalogRepo)
	return ordersapp.NewService(
		ordersRepo,
		orderscatalog.NewResolver(catalogService),
		ordersapp.WithIdempotencyStore(idempotencyStore),
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
