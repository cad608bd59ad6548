package application

import (
	"context"
	"errors"

	types "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/application/types"
	"github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/domain"
	"github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/ports"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

// Service orchestrates the enrichment batch: one catalog snapshot, one
// availability index, then a pure matching pass over the orders. It performs
// no writes, so running it twice over unchanged stores yields identical output.
type Service struct {
	catalog ports.CatalogSource
	orders  ports.OrderSource
}

// NewService wires the enrichment service with its read sources.
func NewService(catalog ports.CatalogSource, orders ports.OrderSource) *Service {
	return &Service{catalog: catalog, orders: orders}
}

// EnrichOrders loads orders in the given states and decorates each with total
// price and candidate restaurants. The availability index is built once per
// batch; per-order work is linear in the order's distinct products.
func (s *Service) EnrichOrders(ctx context.Context, statuses []ordersdomain.Status) ([]types.EnrichedOrder, error) {
	if len(statuses) == 0 {
		statuses = []ordersdomain.Status{ordersdomain.StatusUnprocessed}
	}
	orders, err := s.orders.ListByStatus(ctx, statuses)
	if err != nil {
		return nil, err
	}
	index, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]types.EnrichedOrder, 0, len(orders))
	for _, order := range orders {
		if order == nil {
			continue
		}
		result = append(result, enrich(index, order))
	}
	return result, nil
}

// EnrichOrder computes the derived fields for one already-loaded order.
func (s *Service) EnrichOrder(ctx context.Context, order *ordersdomain.Order) (*types.EnrichedOrder, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	index, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}
	enriched := enrich(index, order)
	return &enriched, nil
}

func (s *Service) buildIndex(ctx context.Context) (*domain.AvailabilityIndex, error) {
	listings, err := s.catalog.ListMenuListings(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildAvailabilityIndex(listings), nil
}

func enrich(index *domain.AvailabilityIndex, order *ordersdomain.Order) types.EnrichedOrder {
	candidates := index.Match(order.DistinctProductIDs())
	names := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		names = append(names, candidate.Name)
	}
	return types.EnrichedOrder{
		Order:                   order,
		TotalPrice:              order.TotalPrice(),
		CandidateRestaurants:    names,
		RequiresManualSelection: len(names) == 0,
	}
}

var _ ports.Service = (*Service)(nil)
