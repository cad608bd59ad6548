package application

import (
	"context"
	"errors"

	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/ports"
	"github.com/foodcartapp/foodcart-api/internal/shared/projection"
)

// InvalidationHook is notified after every menu entry mutation so read-side
// caches of the availability snapshot can be dropped.
type InvalidationHook func(ctx context.Context)

// Service orchestrates catalog use cases.
type Service struct {
	repo       ports.Repository
	invalidate InvalidationHook
}

type Option func(*Service)

// WithInvalidationHook registers the hook called after menu entry mutations.
func WithInvalidationHook(hook InvalidationHook) Option {
	return func(s *Service) {
		s.invalidate = hook
	}
}

// NewService wires the catalog service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ListAvailableProducts returns orderable products sold by at least one restaurant.
func (s *Service) ListAvailableProducts(ctx context.Context) ([]*projection.Projection[*domain.Product], error) {
	result, err := s.repo.ListAvailableProducts(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// GetProduct loads a single product.
func (s *Service) GetProduct(ctx context.Context, id int64) (*projection.Projection[*domain.Product], error) {
	result, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// ResolveProducts loads products by id; absent ids are omitted from the result.
func (s *Service) ResolveProducts(ctx context.Context, ids []int64) (map[int64]*domain.Product, error) {
	if len(ids) == 0 {
		return map[int64]*domain.Product{}, nil
	}
	projections, err := s.repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, mapError(err)
	}
	result := make(map[int64]*domain.Product, len(projections))
	for _, p := range projections {
		if p == nil || p.Entity == nil {
			continue
		}
		result[p.Entity.ID] = p.Entity
	}
	return result, nil
}

// ListMenuListings returns the availability=true menu snapshot.
func (s *Service) ListMenuListings(ctx context.Context) ([]domain.MenuListing, error) {
	result, err := s.repo.ListMenuListings(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// UpsertMenuEntry stores the entry and invalidates dependent caches.
func (s *Service) UpsertMenuEntry(ctx context.Context, entry domain.MenuEntry) error {
	if entry.RestaurantID == 0 || entry.ProductID == 0 {
		return errors.New("menu entry requires restaurant and product identifiers")
	}
	if err := s.repo.SaveMenuEntry(ctx, entry); err != nil {
		return mapError(err)
	}
	if s.invalidate != nil {
		s.invalidate(ctx)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
