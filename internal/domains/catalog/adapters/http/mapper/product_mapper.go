package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
)

// Category is the HTTP representation of a product category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is the storefront representation of a sellable item.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	SpecialStatus bool            `json:"special_status"`
	Description   string          `json:"description"`
	Category      *Category       `json:"category,omitempty"`
	Image         string          `json:"image,omitempty"`
}

// FromDomainProduct maps a domain product into its transport shape.
func FromDomainProduct(p *domain.Product) Product {
	var category *Category
	if p.Category != nil {
		category = &Category{ID: p.Category.ID, Name: p.Category.Name}
	}
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		SpecialStatus: p.Special,
		Description:   p.Description,
		Category:      category,
		Image:         p.ImageURL,
	}
}

// FromDomainProductList maps a slice of domain products to transport products.
func FromDomainProductList(list []*domain.Product) []Product {
	resp := make([]Product, 0, len(list))
	for _, p := range list {
		resp = append(resp, FromDomainProduct(p))
	}
	return resp
}
