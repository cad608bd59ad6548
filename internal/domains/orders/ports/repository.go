package ports

import (
	"context"
	"errors"

	"github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists order aggregates together with their items.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// ListByStatus returns orders in any of the given states, oldest first.
	// An empty status filter returns every order.
	ListByStatus(ctx context.Context, statuses []domain.Status) ([]*domain.Order, error)
}
