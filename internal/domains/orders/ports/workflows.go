package ports

import (
	"context"

	types "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
	"github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

// WorkflowOrchestrator exposes durable workflow operations for order intake.
type WorkflowOrchestrator interface {
	RegisterOrder(ctx context.Context, input types.RegisterOrderInput) (*domain.Order, error)
}
