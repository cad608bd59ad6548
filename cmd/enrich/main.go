// Command enrich runs one enrichment batch and prints the result as JSON.
// It is an operational tool for inspecting pending orders without the API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	catalogpostgres "github.com/foodcartapp/foodcart-api/internal/domains/catalog/adapters/persistence/postgres"
	fulfillmentapp "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/application"
	orderhttpmapper "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/http/mapper"
	orderspostgres "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/persistence/postgres"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
	platformpostgres "github.com/foodcartapp/foodcart-api/internal/platform/postgres"
)

func main() {
	statusFlag := flag.String("status", string(ordersdomain.StatusUnprocessed), "comma-separated order statuses to enrich")
	flag.Parse()

	statuses, err := parseStatuses(*statusFlag)
	if err != nil {
		log.Fatalf("invalid -status value: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot enrich orders")
	}

	service := fulfillmentapp.NewService(
		catalogpostgres.NewRepository(db),
		orderspostgres.NewRepository(db),
	)
	result, err := service.EnrichOrders(ctx, statuses)
	if err != nil {
		log.Fatalf("failed to enrich orders: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(orderhttpmapper.FromEnrichedOrderList(result)); err != nil {
		log.Fatalf("failed to encode result: %v", err)
	}
	logger.Info("enrichment batch completed", slog.Int("orders", len(result)))
}

func parseStatuses(raw string) ([]ordersdomain.Status, error) {
	parts := strings.Split(raw, ",")
	statuses := make([]ordersdomain.Status, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		status := ordersdomain.Status(part)
		switch status {
		case ordersdomain.StatusUnprocessed, ordersdomain.StatusDelivering, ordersdomain.StatusDelivered:
			statuses = append(statuses, status)
		default:
			return nil, fmt.Errorf("unknown order status %q", part)
		}
	}
	return statuses, nil
}
