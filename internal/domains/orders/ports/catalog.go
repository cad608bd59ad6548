package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogProduct is the slice of the catalog the intake flow needs: identity
// plus the current price to capture onto new order items.
type CatalogProduct struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// ProductResolver is the boundary to the catalog context used during intake
// validation and price capture. Unknown ids are absent from the result.
type ProductResolver interface {
	ResolveProducts(ctx context.Context, ids []int64) (map[int64]CatalogProduct, error)
}
