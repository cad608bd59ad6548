package domain

import (
	catalogdomain "github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
)

// RestaurantRef identifies a restaurant inside the availability index.
type RestaurantRef struct {
	ID   int64
	Name string
}

// AvailabilityIndex maps product identity to the set of restaurants currently
// offering it. It is a pure function of the catalog snapshot: build it once
// per batch, then answer per-order lookups without re-scanning the catalog.
// Restaurant sets keep catalog insertion order so output stays deterministic.
type AvailabilityIndex struct {
	byProduct map[int64][]RestaurantRef
	seen      map[int64]map[int64]struct{}
}

// BuildAvailabilityIndex indexes the availability=true listings. Listings
// with the flag unset are ignored even if present in the input, and duplicate
// (restaurant, product) pairs collapse to one entry.
func BuildAvailabilityIndex(listings []catalogdomain.MenuListing) *AvailabilityIndex {
	index := &AvailabilityIndex{
		byProduct: make(map[int64][]RestaurantRef),
		seen:      make(map[int64]map[int64]struct{}),
	}
	for _, listing := range listings {
		if !listing.Availability {
			continue
		}
		restaurants, ok := index.seen[listing.ProductID]
		if !ok {
			restaurants = map[int64]struct{}{}
			index.seen[listing.ProductID] = restaurants
		}
		if _, dup := restaurants[listing.RestaurantID]; dup {
			continue
		}
		restaurants[listing.RestaurantID] = struct{}{}
		index.byProduct[listing.ProductID] = append(index.byProduct[listing.ProductID], RestaurantRef{
			ID:   listing.RestaurantID,
			Name: listing.RestaurantName,
		})
	}
	return index
}

// Restaurants returns the restaurants offering the product. Unknown products
// yield an empty set, never an error: a product deleted from the catalog after
// order placement simply has nowhere to be prepared.
func (idx *AvailabilityIndex) Restaurants(productID int64) []RestaurantRef {
	if idx == nil {
		return nil
	}
	return idx.byProduct[productID]
}

// Offers reports whether the restaurant carries the product.
func (idx *AvailabilityIndex) Offers(restaurantID, productID int64) bool {
	if idx == nil {
		return false
	}
	restaurants, ok := idx.seen[productID]
	if !ok {
		return false
	}
	_, offers := restaurants[restaurantID]
	return offers
}

// Match intersects the per-product restaurant sets: the result contains
// exactly the restaurants able to supply every given product. Order of the
// product ids does not affect membership; the returned slice follows the
// index order of the first product's restaurant set. An empty result is a
// valid outcome meaning no single restaurant can fulfill the order.
func (idx *AvailabilityIndex) Match(productIDs []int64) []RestaurantRef {
	if idx == nil || len(productIDs) == 0 {
		return nil
	}
	candidates := idx.Restaurants(productIDs[0])
	result := make([]RestaurantRef, 0, len(candidates))
	for _, candidate := range candidates {
		servesAll := true
		for _, productID := range productIDs[1:] {
			if !idx.Offers(candidate.ID, productID) {
				servesAll = false
				break
			}
		}
		if servesAll {
			result = append(result, candidate)
		}
	}
	return result
}
