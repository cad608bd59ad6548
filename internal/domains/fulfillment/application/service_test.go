package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

type stubCatalog struct {
	listings []catalogdomain.MenuListing
	err      error
	calls    int
}

func (s *stubCatalog) ListMenuListings(context.Context) ([]catalogdomain.MenuListing, error) {
	s.calls++
	return s.listings, s.err
}

type stubOrders struct {
	orders      []*ordersdomain.Order
	err         error
	gotStatuses []ordersdomain.Status
}

func (s *stubOrders) ListByStatus(_ context.Context, statuses []ordersdomain.Status) ([]*ordersdomain.Order, error) {
	s.gotStatuses = statuses
	return s.orders, s.err
}

func available(restaurantID int64, name string, productID int64) catalogdomain.MenuListing {
	return catalogdomain.MenuListing{
		RestaurantID:   restaurantID,
		RestaurantName: name,
		ProductID:      productID,
		Availability:   true,
	}
}

func testOrder(id int64, items ...ordersdomain.OrderItem) *ordersdomain.Order {
	return &ordersdomain.Order{
		ID:          id,
		Firstname:   "Ivan",
		Lastname:    "Petrov",
		Phonenumber: "+7999",
		Address:     "Lenina 1",
		Status:      ordersdomain.StatusUnprocessed,
		Items:       items,
	}
}

func item(productID int64, qty int32, price string) ordersdomain.OrderItem {
	return ordersdomain.OrderItem{ProductID: productID, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestEnrichOrders_MultipleCandidates(t *testing.T) {
	catalog := &stubCatalog{listings: []catalogdomain.MenuListing{
		available(1, "Mario", 10),
		available(1, "Mario", 11),
		available(2, "Luigi", 10),
		available(2, "Luigi", 11),
	}}
	orders := &stubOrders{orders: []*ordersdomain.Order{
		testOrder(1, item(10, 3, "1.10"), item(11, 2, "0.20")),
	}}
	svc := NewService(catalog, orders)

	result, err := svc.EnrichOrders(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, []string{"Mario", "Luigi"}, result[0].CandidateRestaurants)
	require.True(t, result[0].TotalPrice.Equal(decimal.RequireFromString("3.70")))
	require.False(t, result[0].RequiresManualSelection)
}

func TestEnrichOrders_SingleCandidate(t *testing.T) {
	catalog := &stubCatalog{listings: []catalogdomain.MenuListing{
		available(1, "Mario", 10),
		available(1, "Mario", 11),
		available(2, "Luigi", 10),
	}}
	orders := &stubOrders{orders: []*ordersdomain.Order{
		testOrder(1, item(10, 1, "2.50"), item(11, 1, "1.50")),
	}}
	svc := NewService(catalog, orders)

	result, err := svc.EnrichOrders(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, []string{"Mario"}, result[0].CandidateRestaurants)
}

func TestEnrichOrders_NoCommonRestaurant(t *testing.T) {
	catalog := &stubCatalog{listings: []catalogdomain.MenuListing{
		available(1, "Mario", 10),
		available(2, "Luigi", 11),
	}}
	orders := &stubOrders{orders: []*ordersdomain.Order{
		testOrder(1, item(10, 1, "2.00"), item(11, 1, "3.00")),
	}}
	svc := NewService(catalog, orders)

	result, err := svc.EnrichOrders(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Empty(t, result[0].CandidateRestaurants)
	require.True(t, result[0].RequiresManualSelection)
	require.True(t, result[0].TotalPrice.Equal(decimal.RequireFromString("5.00")))
}

func TestEnrichOrders_MissingProductDegradesGracefully(t *testing.T) {
	catalog := &stubCatalog{listings: []catalogdomain.MenuListing{
		available(1, "Mario", 10),
	}}
	orders := &stubOrders{orders: []*ordersdomain.Order{
		testOrder(1, item(10, 1, "2.00"), item(404, 1, "1.00")),
		testOrder(2, item(10, 2, "2.00")),
	}}
	svc := NewService(catalog, orders)

	result, err := svc.EnrichOrders(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, result, 2, "one broken order must not abort the batch")
	require.Empty(t, result[0].CandidateRestaurants)
	require.True(t, result[0].TotalPrice.Equal(decimal.RequireFromString("3.00")),
		"total still includes the captured price of the missing product")
	require.Equal(t, []string{"Mario"}, result[1].CandidateRestaurants)
}

func TestEnrichOrders_DefaultsToUnprocessed(t *testing.T) {
	catalog := &stubCatalog{}
	orders := &stubOrders{}
	svc := NewService(catalog, orders)

	_, err := svc.EnrichOrders(context.Background(), nil)

	require.NoError(t, err)
	require.Equal(t, []ordersdomain.Status{ordersdomain.StatusUnprocessed}, orders.gotStatuses)
}

func TestEnrichOrders_BuildsIndexOncePerBatch(t *testing.T) {
	catalog := &stubCatalog{listings: []catalogdomain.MenuListing{
		available(1, "Mario", 10),
	}}
	orders := &stubOrders{orders: []*ordersdomain.Order{
		testOrder(1, item(10, 1, "1.00")),
		testOrder(2, item(10, 2, "1.00")),
		testOrder(3, item(10, 3, "1.00")),
	}}
	svc := NewService(catalog, orders)

	_, err := svc.EnrichOrders(context.Background(), nil)

	require.NoError(t, err)
	require.Equal(t, 1, catalog.calls)
}

func TestEnrichOrders_Idempotent(t *testing.T) {
	catalog := &stubCatalog{listings: []catalogdomain.MenuListing{
		available(1, "Mario", 10),
		available(2, "Luigi", 10),
	}}
	orders := &stubOrders{orders: []*ordersdomain.Order{
		testOrder(1, item(10, 2, "1.25")),
	}}
	svc := NewService(catalog, orders)

	first, err := svc.EnrichOrders(context.Background(), nil)
	require.NoError(t, err)
	second, err := svc.EnrichOrders(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnrichOrders_PropagatesSourceErrors(t *testing.T) {
	boom := errors.New("catalog down")
	svc := NewService(&stubCatalog{err: boom}, &stubOrders{orders: []*ordersdomain.Order{testOrder(1, item(10, 1, "1.00"))}})

	_, err := svc.EnrichOrders(context.Background(), nil)
	require.ErrorIs(t, err, boom)
}

func TestEnrichOrder_NilOrder(t *testing.T) {
	svc := NewService(&stubCatalog{}, &stubOrders{})
	_, err := svc.EnrichOrder(context.Background(), nil)
	require.Error(t, err)
}

func TestEnrichOrder_SingleOrder(t *testing.T) {
	catalog := &stubCatalog{listings: []catalogdomain.MenuListing{
		available(1, "Mario", 10),
	}}
	svc := NewService(catalog, &stubOrders{})

	enriched, err := svc.EnrichOrder(context.Background(), testOrder(7, item(10, 4, "0.25")))

	require.NoError(t, err)
	require.NotNil(t, enriched)
	require.Equal(t, []string{"Mario"}, enriched.CandidateRestaurants)
	require.True(t, enriched.TotalPrice.Equal(decimal.RequireFromString("1.00")))
}
