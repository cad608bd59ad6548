package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRestaurantName = errors.New("restaurant name is required")
	ErrEmptyProductName    = errors.New("product name is required")
	ErrNegativePrice       = errors.New("product price must not be negative")
)

// Restaurant is a physical location able to prepare orders. The fulfillment
// engine references restaurants but never mutates them.
type Restaurant struct {
	ID           int64
	Name         string
	Address      string
	ContactPhone string
}

// NewRestaurant validates and constructs a Restaurant.
func NewRestaurant(id int64, name, address, contactPhone string) (*Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyRestaurantName
	}
	return &Restaurant{ID: id, Name: name, Address: address, ContactPhone: contactPhone}, nil
}

// ProductCategory groups products on the storefront.
type ProductCategory struct {
	ID   int64
	Name string
}

// Product is a sellable item. Price carries two-decimal currency precision;
// Orderable controls whether the product can be ordered at all, independent
// of per-restaurant menu availability.
type Product struct {
	ID          int64
	Name        string
	Category    *ProductCategory
	Price       decimal.Decimal
	ImageURL    string
	Description string
	Special     bool
	Orderable   bool
}

// NewProduct validates the invariants and builds a Product.
func NewProduct(id int64, name string, price decimal.Decimal) (*Product, error) {
	p := &Product{ID: id, Orderable: true}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.UpdatePrice(price); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename mutates the product name ensuring the invariant.
func (p *Product) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyProductName
	}
	p.Name = name
	return nil
}

// UpdatePrice sets the current catalog price. Orders capture a copy of this
// value at placement time, so changing it never rewrites historical totals.
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	p.Price = price.Round(2)
	return nil
}

// UpdateCategory sets a new category pointer.
func (p *Product) UpdateCategory(cat *ProductCategory) {
	if cat == nil {
		p.Category = nil
		return
	}
	copy := *cat
	p.Category = &copy
}

// MenuEntry links a restaurant and a product with an availability flag.
// At most one entry exists per (restaurant, product) pair.
type MenuEntry struct {
	RestaurantID int64
	ProductID    int64
	Availability bool
}

// MenuListing is a menu entry pre-joined with the owning restaurant, the shape
// the fulfillment engine consumes so it never repeats restaurant lookups.
type MenuListing struct {
	RestaurantID   int64
	RestaurantName string
	ProductID      int64
	Availability   bool
}
