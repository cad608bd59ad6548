package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	types "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
	ordersports "github.com/foodcartapp/foodcart-api/internal/domains/orders/ports"
)

// RegisterOrderActivityName persists a validated order with captured prices.
const RegisterOrderActivityName = "orders.activities.RegisterOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// RegisterOrder validates the submission, captures catalog prices, and
// persists the order. Retried attempts replay through the intake idempotency
// store when the submission carries an idempotency key.
func (a *Activities) RegisterOrder(ctx context.Context, input types.RegisterOrderInput) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order register activity not initialized")
		return nil, errors.New("order register activity not initialized")
	}
	logger.Info("RegisterOrder activity started", "items", len(input.Products))
	order, err := a.service.Register(ctx, input)
	if err != nil {
		logger.Error("RegisterOrder activity failed", "error", err)
		return nil, err
	}
	logger.Info("RegisterOrder activity completed", "orderId", order.ID)
	return order, nil
}
