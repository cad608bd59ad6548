package orders

import (
	"go.temporal.io/sdk/workflow"

	types "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
	"github.com/foodcartapp/foodcart-api/internal/platform/temporal/sequences"
)

const (
	// OrderRegistrationWorkflowName is the public identifier for registering the workflow.
	OrderRegistrationWorkflowName = "orders.workflows.Registration"
	// OrderRegistrationTaskQueue is the queue consumed by the worker processing order workflows.
	OrderRegistrationTaskQueue = "ORDER_REGISTRATION"
)

// OrderRegistrationWorkflowInput captures the payload required to register an order.
type OrderRegistrationWorkflowInput struct {
	Command types.RegisterOrderInput
	TraceID string
}

// OrderRegistrationWorkflow orchestrates the activities needed to register an order aggregate.
func OrderRegistrationWorkflow(ctx workflow.Context, input OrderRegistrationWorkflowInput) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderRegistrationWorkflow started", withTraceID(input.TraceID, "items", len(input.Command.Products))...)
	order, err := sequences.RunOrderRegistrationSequence(ctx, input.Command)
	if err != nil {
		logger.Error("OrderRegistrationWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	if order != nil {
		logger.Info("OrderRegistrationWorkflow completed", withTraceID(input.TraceID, "orderId", order.ID)...)
	} else {
		logger.Info("OrderRegistrationWorkflow completed", withTraceID(input.TraceID)...)
	}
	return order, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
