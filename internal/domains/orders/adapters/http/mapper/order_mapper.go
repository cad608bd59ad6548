package mapper

import (
	"errors"
	"time"

	fulfillmenttypes "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/application/types"
	orderstypes "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
	"github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

var errMissingProducts = errors.New("products is required")

// ProductSelection is one inbound line of an intake submission. Pointers keep
// field presence so a missing product or quantity fails validation instead of
// defaulting to zero.
type ProductSelection struct {
	Product  *int64 `json:"product"`
	Quantity *int32 `json:"quantity"`
}

// OrderSubmission captures the intake payload for registering an order.
type OrderSubmission struct {
	Firstname   string             `json:"firstname"`
	Lastname    string             `json:"lastname"`
	Phonenumber string             `json:"phonenumber"`
	Address     string             `json:"address"`
	Comment     string             `json:"comment,omitempty"`
	Products    []ProductSelection `json:"products"`
}

// OrderItem is the transport view of a captured order line.
type OrderItem struct {
	Product  int64  `json:"product"`
	Quantity int32  `json:"quantity"`
	Price    string `json:"price"`
}

// Order is the transport representation of an order aggregate.
type Order struct {
	ID           int64       `json:"id"`
	Firstname    string      `json:"firstname"`
	Lastname     string      `json:"lastname"`
	Phonenumber  string      `json:"phonenumber"`
	Address      string      `json:"address"`
	Comment      string      `json:"comment,omitempty"`
	Status       string      `json:"status"`
	Payment      string      `json:"payment_method"`
	RegisteredAt time.Time   `json:"registered_at"`
	CalledAt     *time.Time  `json:"called_at,omitempty"`
	DeliveredAt  *time.Time  `json:"delivered_at,omitempty"`
	Products     []OrderItem `json:"products"`
}

// EnrichedOrder extends the transport order with the derived read-side fields.
type EnrichedOrder struct {
	Order
	TotalPrice              string   `json:"total_price"`
	CandidateRestaurants    []string `json:"candidate_restaurants"`
	RequiresManualSelection bool     `json:"requires_manual_selection"`
}

// UpdateOrder captures the admin-side partial update payload. Pointers keep
// field presence so omitted fields leave stored values untouched.
type UpdateOrder struct {
	Status        *string `json:"status,omitempty"`
	Payment       *string `json:"payment_method,omitempty"`
	Comment       *string `json:"comment,omitempty"`
	MarkCalled    bool    `json:"mark_called,omitempty"`
	MarkDelivered bool    `json:"mark_delivered,omitempty"`
}

// ToRegisterOrderInput converts an intake submission into the application
// command. Shape errors surface here; business validation happens downstream.
func ToRegisterOrderInput(payload OrderSubmission, idempotencyKey string) (orderstypes.RegisterOrderInput, error) {
	if payload.Products == nil {
		return orderstypes.RegisterOrderInput{}, errMissingProducts
	}
	selections := make([]orderstypes.ProductSelection, 0, len(payload.Products))
	for _, line := range payload.Products {
		selection := orderstypes.ProductSelection{}
		if line.Product != nil {
			selection.ProductID = *line.Product
		}
		if line.Quantity != nil {
			selection.Quantity = *line.Quantity
		}
		selections = append(selections, selection)
	}
	return orderstypes.RegisterOrderInput{
		Firstname:      payload.Firstname,
		Lastname:       payload.Lastname,
		Phonenumber:    payload.Phonenumber,
		Address:        payload.Address,
		Comment:        payload.Comment,
		Products:       selections,
		IdempotencyKey: idempotencyKey,
	}, nil
}

// ToUpdateOrderInput converts the transport update payload into the
// application command for the given order.
func ToUpdateOrderInput(id int64, payload UpdateOrder) orderstypes.UpdateOrderInput {
	return orderstypes.UpdateOrderInput{
		ID:            id,
		Status:        payload.Status,
		Payment:       payload.Payment,
		Comment:       payload.Comment,
		MarkCalled:    payload.MarkCalled,
		MarkDelivered: payload.MarkDelivered,
	}
}

// FromDomainOrder maps an order aggregate into its transport shape.
func FromDomainOrder(o *domain.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem{
			Product:  item.ProductID,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
		})
	}
	return Order{
		ID:           o.ID,
		Firstname:    o.Firstname,
		Lastname:     o.Lastname,
		Phonenumber:  o.Phonenumber,
		Address:      o.Address,
		Comment:      o.Comment,
		Status:       string(o.Status),
		Payment:      string(o.Payment),
		RegisteredAt: o.RegisteredAt,
		CalledAt:     o.CalledAt,
		DeliveredAt:  o.DeliveredAt,
		Products:     items,
	}
}

// FromEnrichedOrder maps an enriched read-side view into transport shape.
// Candidate restaurants serialize as an empty array rather than null so
// clients can iterate without nil checks.
func FromEnrichedOrder(e fulfillmenttypes.EnrichedOrder) EnrichedOrder {
	candidates := e.CandidateRestaurants
	if candidates == nil {
		candidates = []string{}
	}
	return EnrichedOrder{
		Order:                   FromDomainOrder(e.Order),
		TotalPrice:              e.TotalPrice.StringFixed(2),
		CandidateRestaurants:    candidates,
		RequiresManualSelection: e.RequiresManualSelection,
	}
}

// FromEnrichedOrderList maps a batch of enriched views into transport shape.
func FromEnrichedOrderList(list []fulfillmenttypes.EnrichedOrder) []EnrichedOrder {
	resp := make([]EnrichedOrder, 0, len(list))
	for _, enriched := range list {
		resp = append(resp, FromEnrichedOrder(enriched))
	}
	return resp
}
