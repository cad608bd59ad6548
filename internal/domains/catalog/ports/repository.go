package ports

import (
	"context"
	"errors"

	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	"github.com/foodcartapp/foodcart-api/internal/shared/projection"
)

var ErrNotFound = errors.New("catalog record not found")

// Repository persists the catalog. Restaurants, products, and menu entries are
// administered externally; the write methods exist for that surface and for
// fixtures, the read methods feed intake validation and the fulfillment engine.
type Repository interface {
	SaveRestaurant(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	SaveProduct(ctx context.Context, product *domain.Product) (*projection.Projection[*domain.Product], error)
	// SaveMenuEntry upserts the entry for its (restaurant, product) pair,
	// keeping the at-most-one-entry-per-pair invariant.
	SaveMenuEntry(ctx context.Context, entry domain.MenuEntry) error

	GetProduct(ctx context.Context, id int64) (*projection.Projection[*domain.Product], error)
	GetProductsByIDs(ctx context.Context, ids []int64) ([]*projection.Projection[*domain.Product], error)
	// ListAvailableProducts returns orderable products carried by at least one
	// restaurant with availability set.
	ListAvailableProducts(ctx context.Context) ([]*projection.Projection[*domain.Product], error)
	// ListMenuListings returns every availability=true menu entry resolved to
	// its restaurant identity and name, in catalog insertion order.
	ListMenuListings(ctx context.Context) ([]domain.MenuListing, error)
}
