package ports

import (
	"context"

	types "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
	"github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

// Service exposes order intake and administration use cases to adapters.
type Service interface {
	Register(ctx context.Context, input types.RegisterOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByStatus(ctx context.Context, statuses []domain.Status) ([]*domain.Order, error)
	Update(ctx context.Context, input types.UpdateOrderInput) (*domain.Order, error)
}
