package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/ports"
	"github.com/foodcartapp/foodcart-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

type productEntry struct {
	product   domain.Product
	createdAt time.Time
	updatedAt time.Time
}

// Repository is an in-memory catalog adapter for development and tests.
// Iteration order follows insertion order so read output stays deterministic.
type Repository struct {
	mu           sync.RWMutex
	restaurants  map[int64]*domain.Restaurant
	restaurantID []int64
	products     map[int64]*productEntry
	productIDs   []int64
	menu         []domain.MenuEntry
	nextID       int64
	now          func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		restaurants: map[int64]*domain.Restaurant{},
		products:    map[int64]*productEntry{},
		now:         time.Now,
	}
}

func (r *Repository) SaveRestaurant(_ context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	if restaurant == nil {
		return nil, errors.New("restaurant is nil")
	}
	clone := *restaurant
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	if _, ok := r.restaurants[clone.ID]; !ok {
		r.restaurantID = append(r.restaurantID, clone.ID)
	}
	r.restaurants[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) SaveProduct(_ context.Context, product *domain.Product) (*projection.Projection[*domain.Product], error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := cloneProduct(product)
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	now := r.now()
	entry, ok := r.products[clone.ID]
	if !ok {
		entry = &productEntry{createdAt: now}
		r.productIDs = append(r.productIDs, clone.ID)
		r.products[clone.ID] = entry
	}
	entry.product = *clone
	entry.updatedAt = now
	return entry.toProjection(), nil
}

func (r *Repository) SaveMenuEntry(_ context.Context, entry domain.MenuEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.menu {
		if r.menu[i].RestaurantID == entry.RestaurantID && r.menu[i].ProductID == entry.ProductID {
			r.menu[i].Availability = entry.Availability
			return nil
		}
	}
	r.menu = append(r.menu, entry)
	return nil
}

func (r *Repository) GetProduct(_ context.Context, id int64) (*projection.Projection[*domain.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return entry.toProjection(), nil
}

func (r *Repository) GetProductsByIDs(_ context.Context, ids []int64) ([]*projection.Projection[*domain.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*projection.Projection[*domain.Product], 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if entry, ok := r.products[id]; ok {
			result = append(result, entry.toProjection())
		}
	}
	return result, nil
}

func (r *Repository) ListAvailableProducts(_ context.Context) ([]*projection.Projection[*domain.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	carried := map[int64]struct{}{}
	for _, entry := range r.menu {
		if entry.Availability {
			carried[entry.ProductID] = struct{}{}
		}
	}
	var result []*projection.Projection[*domain.Product]
	for _, id := range r.productIDs {
		entry := r.products[id]
		if !entry.product.Orderable {
			continue
		}
		if _, ok := carried[id]; !ok {
			continue
		}
		result = append(result, entry.toProjection())
	}
	return result, nil
}

func (r *Repository) ListMenuListings(_ context.Context) ([]domain.MenuListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.MenuListing
	for _, entry := range r.menu {
		if !entry.Availability {
			continue
		}
		restaurant, ok := r.restaurants[entry.RestaurantID]
		if !ok {
			continue
		}
		result = append(result, domain.MenuListing{
			RestaurantID:   entry.RestaurantID,
			RestaurantName: restaurant.Name,
			ProductID:      entry.ProductID,
			Availability:   true,
		})
	}
	return result, nil
}

func (e *productEntry) toProjection() *projection.Projection[*domain.Product] {
	clone := cloneProduct(&e.product)
	return projection.New(clone, e.createdAt, e.updatedAt)
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	if p.Category != nil {
		cat := *p.Category
		clone.Category = &cat
	}
	return &clone
}
