package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	catalogmemory "github.com/foodcartapp/foodcart-api/internal/domains/catalog/adapters/memory"
	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	"github.com/foodcartapp/foodcart-api/internal/domains/catalog/ports"
)

func seedCatalog(t *testing.T, repo ports.Repository) {
	t.Helper()
	ctx := context.Background()

	mario, err := domain.NewRestaurant(0, "Mario", "Lenina 1", "+7999")
	require.NoError(t, err)
	_, err = repo.SaveRestaurant(ctx, mario)
	require.NoError(t, err)

	burger, err := domain.NewProduct(10, "Burger", decimal.RequireFromString("3.50"))
	require.NoError(t, err)
	_, err = repo.SaveProduct(ctx, burger)
	require.NoError(t, err)

	fries, err := domain.NewProduct(11, "Fries", decimal.RequireFromString("1.25"))
	require.NoError(t, err)
	fries.Orderable = false
	_, err = repo.SaveProduct(ctx, fries)
	require.NoError(t, err)

	require.NoError(t, repo.SaveMenuEntry(ctx, domain.MenuEntry{RestaurantID: 1, ProductID: 10, Availability: true}))
	require.NoError(t, repo.SaveMenuEntry(ctx, domain.MenuEntry{RestaurantID: 1, ProductID: 11, Availability: true}))
}

func TestListAvailableProducts_FiltersOrderableAndCarried(t *testing.T) {
	repo := catalogmemory.NewRepository()
	seedCatalog(t, repo)
	svc := NewService(repo)

	result, err := svc.ListAvailableProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1, "non-orderable products must not be listed")
	require.Equal(t, int64(10), result[0].Entity.ID)
	require.False(t, result[0].Metadata.CreatedAt.IsZero())
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository())

	_, err := svc.GetProduct(context.Background(), 42)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestResolveProducts_OmitsUnknownIDs(t *testing.T) {
	repo := catalogmemory.NewRepository()
	seedCatalog(t, repo)
	svc := NewService(repo)

	resolved, err := svc.ResolveProducts(context.Background(), []int64{10, 404})

	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.Contains(t, resolved, int64(10))
	require.True(t, resolved[10].Price.Equal(decimal.RequireFromString("3.50")))
}

func TestResolveProducts_EmptyInput(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository())

	resolved, err := svc.ResolveProducts(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, resolved)
}

func TestUpsertMenuEntry_InvokesInvalidationHook(t *testing.T) {
	repo := catalogmemory.NewRepository()
	seedCatalog(t, repo)

	invalidations := 0
	svc := NewService(repo, WithInvalidationHook(func(context.Context) { invalidations++ }))

	err := svc.UpsertMenuEntry(context.Background(), domain.MenuEntry{RestaurantID: 1, ProductID: 10, Availability: false})
	require.NoError(t, err)
	require.Equal(t, 1, invalidations)

	listings, err := svc.ListMenuListings(context.Background())
	require.NoError(t, err)
	for _, listing := range listings {
		require.NotEqual(t, int64(10), listing.ProductID, "flipped entry must leave the snapshot")
	}
}

func TestUpsertMenuEntry_RequiresIdentifiers(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository())

	err := svc.UpsertMenuEntry(context.Background(), domain.MenuEntry{})
	require.Error(t, err)
}

func TestListMenuListings_ResolvesRestaurantNames(t *testing.T) {
	repo := catalogmemory.NewRepository()
	seedCatalog(t, repo)
	svc := NewService(repo)

	listings, err := svc.ListMenuListings(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 2)
	require.Equal(t, "Mario", listings[0].RestaurantName)
	require.True(t, listings[0].Availability)
}
