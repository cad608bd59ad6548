package ports

import (
	"context"

	catalogdomain "github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

// CatalogSource supplies the availability snapshot the engine indexes.
// The catalog repository satisfies it directly; cache adapters decorate it.
type CatalogSource interface {
	ListMenuListings(ctx context.Context) ([]catalogdomain.MenuListing, error)
}

// OrderSource supplies the orders to enrich. The orders repository satisfies it directly.
type OrderSource interface {
	ListByStatus(ctx context.Context, statuses []ordersdomain.Status) ([]*ordersdomain.Order, error)
}
