package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	types "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
	"github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
	"github.com/foodcartapp/foodcart-api/internal/domains/orders/ports"
)

// Service orchestrates order intake and administration use cases.
type Service struct {
	repo        ports.Repository
	catalog     ports.ProductResolver
	idempotency ports.IdempotencyStore
	now         func() time.Time
}

type Option func(*Service)

// WithIdempotencyStore enables intake replay protection for clients sending
// an Idempotency-Key.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *Service) {
		s.idempotency = store
	}
}

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the orders service with its dependencies.
func NewService(repo ports.Repository, catalog ports.ProductResolver, opts ...Option) *Service {
	s := &Service{repo: repo, catalog: catalog, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Register validates an intake submission, captures current catalog prices
// onto the line items, and persists the order atomically with its items.
func (s *Service) Register(ctx context.Context, input types.RegisterOrderInput) (*domain.Order, error) {
	if fields := validateShape(input); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	ids := make([]int64, 0, len(input.Products))
	for _, selection := range input.Products {
		ids = append(ids, selection.ProductID)
	}
	resolved, err := s.catalog.ResolveProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]domain.OrderItem, 0, len(input.Products))
	for _, selection := range input.Products {
		product, ok := resolved[selection.ProductID]
		if !ok {
			return nil, &ValidationError{Fields: map[string]string{
				"products": fmt.Sprintf("product %d does not exist", selection.ProductID),
			}}
		}
		items = append(items, domain.OrderItem{
			ProductID: selection.ProductID,
			Quantity:  selection.Quantity,
			Price:     product.Price,
		})
	}

	if key := strings.TrimSpace(input.IdempotencyKey); key != "" && s.idempotency != nil {
		return s.registerIdempotent(ctx, key, input, items)
	}
	return s.persistOrder(ctx, input, items)
}

func (s *Service) registerIdempotent(ctx context.Context, key string, input types.RegisterOrderInput, items []domain.OrderItem) (*domain.Order, error) {
	hash, err := FingerprintRegisterOrder(input)
	if err != nil {
		return nil, err
	}
	if existing, err := s.idempotency.Get(ctx, key); err != nil {
		return nil, err
	} else if existing != nil {
		if existing.RequestHash != hash {
			return nil, ports.ErrIdempotencyConflict
		}
		return s.repo.GetByID(ctx, existing.OrderID)
	}
	saved, err := s.persistOrder(ctx, input, items)
	if err != nil {
		return nil, err
	}
	record := ports.IdempotencyRecord{Key: key, RequestHash: hash, OrderID: saved.ID}
	if _, err := s.idempotency.Save(ctx, record); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *Service) persistOrder(ctx context.Context, input types.RegisterOrderInput, items []domain.OrderItem) (*domain.Order, error) {
	order, err := domain.NewOrder(0, input.Firstname, input.Lastname, input.Phonenumber, input.Address, items)
	if err != nil {
		return nil, mapError(err)
	}
	order.Comment = input.Comment
	order.RegisteredAt = s.now()
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetByID loads a single order aggregate.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByStatus returns orders in any of the provided states.
func (s *Service) ListByStatus(ctx context.Context, statuses []domain.Status) ([]*domain.Order, error) {
	return s.repo.ListByStatus(ctx, statuses)
}

// Update applies the admin-side mutations: status, payment, comment, and the
// operational timestamps. Items are immutable and never touched here.
func (s *Service) Update(ctx context.Context, input types.UpdateOrderInput) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Status != nil {
		if err := order.UpdateStatus(domain.Status(*input.Status)); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Payment != nil {
		if err := order.UpdatePayment(domain.Payment(*input.Payment)); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Comment != nil {
		order.Comment = *input.Comment
	}
	if input.MarkCalled {
		order.MarkCalled(s.now())
	}
	if input.MarkDelivered {
		order.MarkDelivered(s.now())
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func validateShape(input types.RegisterOrderInput) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(input.Firstname) == "" {
		fields["firstname"] = "must be a non-empty string"
	}
	if strings.TrimSpace(input.Lastname) == "" {
		fields["lastname"] = "must be a non-empty string"
	}
	if strings.TrimSpace(input.Phonenumber) == "" {
		fields["phonenumber"] = "must be a non-empty string"
	}
	if strings.TrimSpace(input.Address) == "" {
		fields["address"] = "must be a non-empty string"
	}
	if len(input.Products) == 0 {
		fields["products"] = "must be a non-empty list"
		return fields
	}
	for _, selection := range input.Products {
		if selection.ProductID <= 0 {
			fields["products"] = "each entry requires a positive product id"
			break
		}
		if selection.Quantity <= 0 {
			fields["products"] = "each entry requires a positive quantity"
			break
		}
	}
	return fields
}

var _ ports.Service = (*Service)(nil)
