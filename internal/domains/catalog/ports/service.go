package ports

import (
	"context"

	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	"github.com/foodcartapp/foodcart-api/internal/shared/projection"
)

// Service exposes catalog use cases to adapters and sibling contexts.
type Service interface {
	ListAvailableProducts(ctx context.Context) ([]*projection.Projection[*domain.Product], error)
	GetProduct(ctx context.Context, id int64) (*projection.Projection[*domain.Product], error)
	// ResolveProducts loads the products for the given ids. Unknown ids are
	// simply absent from the result, the caller decides whether that is fatal.
	ResolveProducts(ctx context.Context, ids []int64) (map[int64]*domain.Product, error)
	ListMenuListings(ctx context.Context) ([]domain.MenuListing, error)
	// UpsertMenuEntry updates per-restaurant availability and notifies any
	// registered availability cache invalidation hook.
	UpsertMenuEntry(ctx context.Context, entry domain.MenuEntry) error
}
