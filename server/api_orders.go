package foodcartserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	fulfillmentports "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/ports"
	orderhttpmapper "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/http/mapper"
	ordersapp "github.com/foodcartapp/foodcart-api/internal/domains/orders/application"
	orderstypes "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
	ordersports "github.com/foodcartapp/foodcart-api/internal/domains/orders/ports"
	apierrors "github.com/foodcartapp/foodcart-api/internal/shared/errors"
)

// IdempotencyKeyHeader carries the client-chosen intake replay token.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrdersAPI wires HTTP transport with the orders service, the durable
// registration workflows, and the fulfillment enrichment read side.
type OrdersAPI struct {
	service    ordersports.Service
	workflows  ordersports.WorkflowOrchestrator
	enrichment fulfillmentports.Service
}

// NewOrdersAPI creates an OrdersAPI backed by the provided services.
func NewOrdersAPI(service ordersports.Service, workflows ordersports.WorkflowOrchestrator, enrichment fulfillmentports.Service) OrdersAPI {
	return OrdersAPI{service: service, workflows: workflows, enrichment: enrichment}
}

// Post /api/order/
// Registers a customer order with prices captured from the catalog
func (api *OrdersAPI) RegisterOrder(c *gin.Context) {
	var payload orderhttpmapper.OrderSubmission
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input, err := orderhttpmapper.ToRegisterOrderInput(payload, c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := api.registerOrder(c.Request.Context(), input)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	api.respondEnriched(c, order)
}

func (api *OrdersAPI) registerOrder(ctx context.Context, input orderstypes.RegisterOrderInput) (*ordersdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.RegisterOrder(ctx, input)
	}
	return api.service.Register(ctx, input)
}

// Get /api/orders/
// Lists orders enriched with total price and candidate restaurants
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	statuses, ok := parseStatusQuery(c)
	if !ok {
		return
	}
	result, err := api.enrichment.EnrichOrders(c.Request.Context(), statuses)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromEnrichedOrderList(result))
}

// Patch /api/orders/:orderId
// Applies operational updates: status, payment method, comment, call and delivery marks
func (api *OrdersAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload orderhttpmapper.UpdateOrder
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := api.service.Update(c.Request.Context(), orderhttpmapper.ToUpdateOrderInput(id, payload))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	api.respondEnriched(c, order)
}

// respondEnriched attaches the derived read-side fields to a single order
// response. Enrichment failures degrade to the plain order view rather than
// failing a mutation that already committed.
func (api *OrdersAPI) respondEnriched(c *gin.Context, order *ordersdomain.Order) {
	if api.enrichment != nil {
		if enriched, err := api.enrichment.EnrichOrder(c.Request.Context(), order); err == nil && enriched != nil {
			c.JSON(http.StatusOK, orderhttpmapper.FromEnrichedOrder(*enriched))
			return
		}
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}

func parseStatusQuery(c *gin.Context) ([]ordersdomain.Status, bool) {
	values := c.QueryArray("status")
	statuses := make([]ordersdomain.Status, 0, len(values))
	for _, value := range values {
		status := ordersdomain.Status(value)
		switch status {
		case ordersdomain.StatusUnprocessed, ordersdomain.StatusDelivering, ordersdomain.StatusDelivered:
			statuses = append(statuses, status)
		default:
			respondError(c, http.StatusBadRequest, errors.New("unknown order status: "+value))
			return nil, false
		}
	}
	return statuses, true
}

func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var validation *ordersapp.ValidationError
	if errors.As(err, &validation) {
		respondProblem(c, apierrors.NewValidationProblem(validation.Fields))
		return
	}
	if errors.Is(err, ordersports.ErrIdempotencyConflict) {
		respondError(c, http.StatusConflict, err)
		return
	}
	if errors.Is(err, ordersports.ErrNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if errors.Is(err, ordersapp.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	respondError(c, http.StatusInternalServerError, err)
}
