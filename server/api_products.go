package foodcartserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/foodcartapp/foodcart-api/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/foodcartapp/foodcart-api/internal/domains/catalog/application"
	catalogdomain "github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	catalogports "github.com/foodcartapp/foodcart-api/internal/domains/catalog/ports"
)

// ProductsAPI wires HTTP transport with the catalog bounded context service.
type ProductsAPI struct {
	service catalogports.Service
}

// NewProductsAPI creates a ProductsAPI backed by the provided service.
func NewProductsAPI(service catalogports.Service) ProductsAPI {
	return ProductsAPI{service: service}
}

// Get /api/products/
// Lists products currently orderable somewhere on the platform
func (api *ProductsAPI) ListProducts(c *gin.Context) {
	result, err := api.service.ListAvailableProducts(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	products := make([]*catalogdomain.Product, 0, len(result))
	for _, proj := range result {
		products = append(products, proj.Entity)
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProductList(products))
}

func respondCatalogServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, catalogports.ErrNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if errors.Is(err, catalogapp.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	respondError(c, http.StatusInternalServerError, err)
}
