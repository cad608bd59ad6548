package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	ordersmemory "github.com/foodcartapp/foodcart-api/internal/domains/orders/adapters/memory"
	types "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
	"github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
	"github.com/foodcartapp/foodcart-api/internal/domains/orders/ports"
)

type stubResolver struct {
	products map[int64]ports.CatalogProduct
}

func (s stubResolver) ResolveProducts(_ context.Context, ids []int64) (map[int64]ports.CatalogProduct, error) {
	result := make(map[int64]ports.CatalogProduct, len(ids))
	for _, id := range ids {
		if product, ok := s.products[id]; ok {
			result[id] = product
		}
	}
	return result, nil
}

func catalogWith(products ...ports.CatalogProduct) stubResolver {
	resolver := stubResolver{products: map[int64]ports.CatalogProduct{}}
	for _, product := range products {
		resolver.products[product.ID] = product
	}
	return resolver
}

func burgerAndFries() stubResolver {
	return catalogWith(
		ports.CatalogProduct{ID: 10, Name: "Burger", Price: decimal.RequireFromString("3.50")},
		ports.CatalogProduct{ID: 11, Name: "Fries", Price: decimal.RequireFromString("1.25")},
	)
}

func validInput() types.RegisterOrderInput {
	return types.RegisterOrderInput{
		Firstname:   "Ivan",
		Lastname:    "Petrov",
		Phonenumber: "+79991234567",
		Address:     "Lenina 1",
		Products: []types.ProductSelection{
			{ProductID: 10, Quantity: 2},
			{ProductID: 11, Quantity: 1},
		},
	}
}

func TestRegister_CapturesCatalogPrices(t *testing.T) {
	svc := NewService(ordersmemory.NewRepository(), burgerAndFries())

	order, err := svc.Register(context.Background(), validInput())

	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Len(t, order.Items, 2)
	require.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("3.50")))
	require.True(t, order.Items[1].Price.Equal(decimal.RequireFromString("1.25")))
	require.True(t, order.TotalPrice().Equal(decimal.RequireFromString("8.25")))
	require.Equal(t, domain.StatusUnprocessed, order.Status)
	require.Equal(t, domain.PaymentUndefined, order.Payment)
}

func TestRegister_MissingFieldsRejectedWithFieldMap(t *testing.T) {
	svc := NewService(ordersmemory.NewRepository(), burgerAndFries())

	_, err := svc.Register(context.Background(), types.RegisterOrderInput{})

	require.ErrorIs(t, err, ErrInvalidInput)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Contains(t, validation.Fields, "firstname")
	require.Contains(t, validation.Fields, "lastname")
	require.Contains(t, validation.Fields, "phonenumber")
	require.Contains(t, validation.Fields, "address")
	require.Contains(t, validation.Fields, "products")
}

func TestRegister_UnknownProductRejected(t *testing.T) {
	svc := NewService(ordersmemory.NewRepository(), burgerAndFries())

	input := validInput()
	input.Products = append(input.Products, types.ProductSelection{ProductID: 404, Quantity: 1})
	_, err := svc.Register(context.Background(), input)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Contains(t, validation.Fields["products"], "404")
}

func TestRegister_NonPositiveQuantityRejected(t *testing.T) {
	svc := NewService(ordersmemory.NewRepository(), burgerAndFries())

	input := validInput()
	input.Products[0].Quantity = 0
	_, err := svc.Register(context.Background(), input)

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_PriceDecoupledFromLaterCatalogChanges(t *testing.T) {
	resolver := burgerAndFries()
	svc := NewService(ordersmemory.NewRepository(), resolver)

	order, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	// Reprice the catalog after registration.
	resolver.products[10] = ports.CatalogProduct{ID: 10, Name: "Burger", Price: decimal.RequireFromString("9.99")}

	reloaded, err := svc.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.True(t, reloaded.Items[0].Price.Equal(decimal.RequireFromString("3.50")))
	require.True(t, reloaded.TotalPrice().Equal(decimal.RequireFromString("8.25")))
}

func TestRegister_IdempotentReplayReturnsSameOrder(t *testing.T) {
	svc := NewService(
		ordersmemory.NewRepository(),
		burgerAndFries(),
		WithIdempotencyStore(ordersmemory.NewIdempotencyStore()),
	)

	input := validInput()
	input.IdempotencyKey = "key-1"

	first, err := svc.Register(context.Background(), input)
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)

	orders, err := svc.ListByStatus(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, orders, 1, "replay must not create a second order")
}

func TestRegister_IdempotencyKeyReuseWithDifferentPayloadConflicts(t *testing.T) {
	svc := NewService(
		ordersmemory.NewRepository(),
		burgerAndFries(),
		WithIdempotencyStore(ordersmemory.NewIdempotencyStore()),
	)

	input := validInput()
	input.IdempotencyKey = "key-1"
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	changed := input
	changed.Address = "Lenina 2"
	_, err = svc.Register(context.Background(), changed)
	require.ErrorIs(t, err, ports.ErrIdempotencyConflict)
}

func TestUpdate_StatusPaymentAndTimestamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(
		ordersmemory.NewRepository(),
		burgerAndFries(),
		WithClock(func() time.Time { return now }),
	)

	order, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	status := string(domain.StatusDelivering)
	payment := string(domain.PaymentCash)
	comment := "call before arriving"
	updated, err := svc.Update(context.Background(), types.UpdateOrderInput{
		ID:         order.ID,
		Status:     &status,
		Payment:    &payment,
		Comment:    &comment,
		MarkCalled: true,
	})

	require.NoError(t, err)
	require.Equal(t, domain.StatusDelivering, updated.Status)
	require.Equal(t, domain.PaymentCash, updated.Payment)
	require.Equal(t, comment, updated.Comment)
	require.NotNil(t, updated.CalledAt)
	require.Equal(t, now, *updated.CalledAt)

	delivered, err := svc.Update(context.Background(), types.UpdateOrderInput{ID: order.ID, MarkDelivered: true})
	require.NoError(t, err)
	require.Equal(t, domain.StatusDelivered, delivered.Status)
	require.NotNil(t, delivered.DeliveredAt)
}

func TestUpdate_InvalidStatusRejected(t *testing.T) {
	svc := NewService(ordersmemory.NewRepository(), burgerAndFries())

	order, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	bad := "cancelled"
	_, err = svc.Update(context.Background(), types.UpdateOrderInput{ID: order.ID, Status: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_UnknownOrder(t *testing.T) {
	svc := NewService(ordersmemory.NewRepository(), burgerAndFries())

	status := string(domain.StatusDelivering)
	_, err := svc.Update(context.Background(), types.UpdateOrderInput{ID: 42, Status: &status})
	require.ErrorIs(t, err, ports.ErrNotFound)
}
