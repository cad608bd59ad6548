package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	types "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
	orderactivities "github.com/foodcartapp/foodcart-api/internal/platform/temporal/activities/orders"
)

// RunOrderRegistrationSequence executes the ordered set of activities needed
// to register an order: validation, price capture, and persistence.
func RunOrderRegistrationSequence(ctx workflow.Context, input types.RegisterOrderInput) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order registration sequence started", "items", len(input.Products))
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
			// Rejected submissions are final; retrying them cannot succeed.
			NonRetryableErrorTypes: []string{"ValidationError"},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var order ordersdomain.Order
	err := workflow.ExecuteActivity(ctx, orderactivities.RegisterOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order registration sequence failed", "error", err)
		return nil, err
	}
	logger.Info("order registration sequence completed", "orderId", order.ID)
	return &order, nil
}
