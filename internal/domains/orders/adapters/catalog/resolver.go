package catalog

import (
	"context"
	"errors"

	catalogports "github.com/foodcartapp/foodcart-api/internal/domains/catalog/ports"
	"github.com/foodcartapp/foodcart-api/internal/domains/orders/ports"
)

var _ ports.ProductResolver = (*Resolver)(nil)

// Resolver bridges the orders context to the catalog service for intake
// validation and price capture.
type Resolver struct {
	catalog catalogports.Service
}

// NewResolver wires the catalog service into the orders boundary.
func NewResolver(catalog catalogports.Service) *Resolver {
	return &Resolver{catalog: catalog}
}

// ResolveProducts loads catalog products by id; unknown ids stay absent.
func (r *Resolver) ResolveProducts(ctx context.Context, ids []int64) (map[int64]ports.CatalogProduct, error) {
	if r == nil || r.catalog == nil {
		return nil, errors.New("catalog resolver not configured")
	}
	products, err := r.catalog.ResolveProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	result := make(map[int64]ports.CatalogProduct, len(products))
	for id, product := range products {
		result[id] = ports.CatalogProduct{ID: product.ID, Name: product.Name, Price: product.Price}
	}
	return result, nil
}
