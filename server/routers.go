// Package foodcartserver exposes the storefront and operations HTTP API.
package foodcartserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is a list of Route.
type Routes []Route

// ApiHandleFunctions groups the per-surface API handlers wired into the router.
type ApiHandleFunctions struct {
	BannersAPI  BannersAPI
	ProductsAPI ProductsAPI
	OrdersAPI   OrdersAPI
}

// NewRouter returns a new router with a default gin engine.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the API routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc responds for routes without a bound handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			Name:        "ListBanners",
			Method:      http.MethodGet,
			Pattern:     "/api/banners/",
			HandlerFunc: handleFunctions.BannersAPI.ListBanners,
		},
		{
			Name:        "ListProducts",
			Method:      http.MethodGet,
			Pattern:     "/api/products/",
			HandlerFunc: handleFunctions.ProductsAPI.ListProducts,
		},
		{
			Name:        "RegisterOrder",
			Method:      http.MethodPost,
			Pattern:     "/api/order/",
			HandlerFunc: handleFunctions.OrdersAPI.RegisterOrder,
		},
		{
			Name:        "ListOrders",
			Method:      http.MethodGet,
			Pattern:     "/api/orders/",
			HandlerFunc: handleFunctions.OrdersAPI.ListOrders,
		},
		{
			Name:        "UpdateOrder",
			Method:      http.MethodPatch,
			Pattern:     "/api/orders/:orderId",
			HandlerFunc: handleFunctions.OrdersAPI.UpdateOrder,
		},
	}
}
