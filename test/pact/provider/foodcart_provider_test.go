//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/foodcartapp/foodcart-api/test/pact"

	catalogmemory "github.com/foodcartapp/foodcart-api/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/foodcartapp/foodcart-api/internal/domains/catalog/application"
	catalogdomain "github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	fulfillmentobs "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/adapters/observability"
	fulfillmentapp "github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/application"
	orderscatalog "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/memory"
	ordersworkflows "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/foodcartapp/foodcart-api/internal/domains/orders/application"
	foodcartserver "github.com/foodcartapp/foodcart-api/server"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFoodcartProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateMenuSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.seedMenu(t)
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			// Memory order IDs count up from one, so the probed ID stays vacant.
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	catalogRepo *catalogmemory.Repository
	server      *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	catalogRepo := catalogmemory.NewRepository()
	catalogService := catalogapp.NewService(catalogRepo)

	ordersRepo := ordersmemory.NewRepository()
	ordersService := ordersapp.NewService(ordersRepo, orderscatalog.NewResolver(catalogService),
		ordersapp.WithIdempotencyStore(ordersmemory.NewIdempotencyStore()))
	workflows := ordersworkflows.NewInlineOrderWorkflows(ordersService)

	enrichment := fulfillmentobs.New(fulfillmentapp.NewService(catalogService, ordersRepo))

	handlers := foodcartserver.ApiHandleFunctions{
		BannersAPI:  foodcartserver.NewBannersAPI(),
		ProductsAPI: foodcartserver.NewProductsAPI(catalogService),
		OrdersAPI:   foodcartserver.NewOrdersAPI(ordersService, workflows, enrichment),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = foodcartserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		catalogRepo: catalogRepo,
		server:      server,
	}
}

// seedMenu upserts two restaurants that both carry the contract's products,
// so registered orders resolve a non-empty candidate set.
func (a *contractProviderApp) seedMenu(t testing.TB) {
	t.Helper()
	ctx := context.Background()

	for id, name := range map[int64]string{1: "Mario", 2: "Luigi"} {
		restaurant, err := catalogdomain.NewRestaurant(id, name, "Lenina 1", "+79990000000")
		require.NoError(t, err)
		_, err = a.catalogRepo.SaveRestaurant(ctx, restaurant)
		require.NoError(t, err)
	}

	burger, err := catalogdomain.NewProduct(pacttest.BurgerProductID, "Burger", decimal.RequireFromString("3.50"))
	require.NoError(t, err)
	burger.Description = "Classic beef burger"
	_, err = a.catalogRepo.SaveProduct(ctx, burger)
	require.NoError(t, err)

	fries, err := catalogdomain.NewProduct(pacttest.FriesProductID, "Fries", decimal.RequireFromString("1.25"))
	require.NoError(t, err)
	_, err = a.catalogRepo.SaveProduct(ctx, fries)
	require.NoError(t, err)

	for restaurantID := int64(1); restaurantID <= 2; restaurantID++ {
		for _, productID := range []int64{pacttest.BurgerProductID, pacttest.FriesProductID} {
			entry := catalogdomain.MenuEntry{RestaurantID: restaurantID, ProductID: productID, Availability: true}
			require.NoError(t, a.catalogRepo.SaveMenuEntry(ctx, entry))
		}
	}
}
