package ports

import (
	"context"

	types "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/application/types"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

// Service exposes the enrichment use cases to adapters.
type Service interface {
	// EnrichOrders loads the orders in the given states (unprocessed when
	// empty) and attaches total price and candidate restaurants to each.
	EnrichOrders(ctx context.Context, statuses []ordersdomain.Status) ([]types.EnrichedOrder, error)
	// EnrichOrder computes the derived fields for a single, already-loaded order.
	EnrichOrder(ctx context.Context, order *ordersdomain.Order) (*types.EnrichedOrder, error)
}
