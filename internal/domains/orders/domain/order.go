package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status enumerates order lifecycle progression.
type Status string

const (
	StatusUnprocessed Status = "unprocessed"
	StatusDelivering  Status = "delivering"
	StatusDelivered   Status = "delivered"
)

// Payment enumerates how the customer settles the order.
type Payment string

const (
	PaymentCash       Payment = "cash"
	PaymentElectronic Payment = "electronic"
	PaymentUndefined  Payment = "undefined"
)

var (
	ErrEmptyFirstname  = errors.New("firstname is required")
	ErrEmptyLastname   = errors.New("lastname is required")
	ErrEmptyPhone      = errors.New("phonenumber is required")
	ErrEmptyAddress    = errors.New("address is required")
	ErrNoItems         = errors.New("order requires at least one item")
	ErrInvalidProduct  = errors.New("order item product id must be greater than zero")
	ErrInvalidQuantity = errors.New("order item quantity must be greater than zero")
	ErrNegativePrice   = errors.New("order item price must not be negative")
	ErrInvalidStatus   = errors.New("order status is invalid")
	ErrInvalidPayment  = errors.New("order payment method is invalid")
)

// OrderItem is one line of an order. Price is the unit price captured at
// placement time; it is never rewritten when the catalog price changes, so
// historical totals stay stable.
type OrderItem struct {
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

// Validate enforces the line item invariants.
func (i OrderItem) Validate() error {
	if i.ProductID <= 0 {
		return ErrInvalidProduct
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// Subtotal returns price times quantity with exact decimal arithmetic.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

// Order models a customer order aggregate. Items are created together with
// the order and never mutated afterwards; only status, payment, and the
// operational timestamps change during the order's life.
type Order struct {
	ID           int64
	Firstname    string
	Lastname     string
	Phonenumber  string
	Address      string
	Comment      string
	Status       Status
	Payment      Payment
	RegisteredAt time.Time
	CalledAt     *time.Time
	DeliveredAt  *time.Time
	Items        []OrderItem
}

// NewOrder validates and constructs an Order aggregate in its initial state.
func NewOrder(id int64, firstname, lastname, phonenumber, address string, items []OrderItem) (*Order, error) {
	order := &Order{
		ID:           id,
		Firstname:    firstname,
		Lastname:     lastname,
		Phonenumber:  phonenumber,
		Address:      address,
		Status:       StatusUnprocessed,
		Payment:      PaymentUndefined,
		RegisteredAt: time.Now(),
		Items:        append([]OrderItem{}, items...),
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.Firstname) == "" {
		return ErrEmptyFirstname
	}
	if strings.TrimSpace(o.Lastname) == "" {
		return ErrEmptyLastname
	}
	if strings.TrimSpace(o.Phonenumber) == "" {
		return ErrEmptyPhone
	}
	if strings.TrimSpace(o.Address) == "" {
		return ErrEmptyAddress
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	if !isValidPayment(o.Payment) {
		return ErrInvalidPayment
	}
	return nil
}

// TotalPrice sums price times quantity over the captured line items.
// An order without items prices to zero rather than failing.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// DistinctProductIDs returns the order's product identities in first-seen order.
func (o *Order) DistinctProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(o.Items))
	ids := make([]int64, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// UpdateStatus ensures only known states are accepted and defaults to unprocessed.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusUnprocessed
	}
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

// UpdatePayment ensures only known payment methods are accepted.
func (o *Order) UpdatePayment(payment Payment) error {
	if payment == "" {
		payment = PaymentUndefined
	}
	if !isValidPayment(payment) {
		return ErrInvalidPayment
	}
	o.Payment = payment
	return nil
}

// MarkCalled records when operational staff reached the customer.
func (o *Order) MarkCalled(at time.Time) {
	t := at
	o.CalledAt = &t
}

// MarkDelivered records the delivery moment and advances the status.
func (o *Order) MarkDelivered(at time.Time) {
	t := at
	o.DeliveredAt = &t
	o.Status = StatusDelivered
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusUnprocessed, StatusDelivering, StatusDelivered:
		return true
	default:
		return false
	}
}

func isValidPayment(payment Payment) bool {
	switch payment {
	case PaymentCash, PaymentElectronic, PaymentUndefined:
		return true
	default:
		return false
	}
}
