package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validItems() []OrderItem {
	return []OrderItem{
		{ProductID: 1, Quantity: 3, Price: decimal.RequireFromString("1.10")},
		{ProductID: 2, Quantity: 2, Price: decimal.RequireFromString("0.20")},
	}
}

func TestNewOrder_Defaults(t *testing.T) {
	order, err := NewOrder(0, "Ivan", "Petrov", "+79991234567", "Lenina 1", validItems())

	require.NoError(t, err)
	require.Equal(t, StatusUnprocessed, order.Status)
	require.Equal(t, PaymentUndefined, order.Payment)
	require.False(t, order.RegisteredAt.IsZero())
	require.Nil(t, order.CalledAt)
	require.Nil(t, order.DeliveredAt)
}

func TestNewOrder_Validation(t *testing.T) {
	cases := []struct {
		name      string
		firstname string
		lastname  string
		phone     string
		address   string
		items     []OrderItem
		want      error
	}{
		{"missing firstname", "", "Petrov", "+7999", "Lenina 1", validItems(), ErrEmptyFirstname},
		{"missing lastname", "Ivan", " ", "+7999", "Lenina 1", validItems(), ErrEmptyLastname},
		{"missing phone", "Ivan", "Petrov", "", "Lenina 1", validItems(), ErrEmptyPhone},
		{"missing address", "Ivan", "Petrov", "+7999", "", validItems(), ErrEmptyAddress},
		{"no items", "Ivan", "Petrov", "+7999", "Lenina 1", nil, ErrNoItems},
		{"zero quantity", "Ivan", "Petrov", "+7999", "Lenina 1", []OrderItem{{ProductID: 1, Quantity: 0}}, ErrInvalidQuantity},
		{"bad product id", "Ivan", "Petrov", "+7999", "Lenina 1", []OrderItem{{ProductID: 0, Quantity: 1}}, ErrInvalidProduct},
		{"negative price", "Ivan", "Petrov", "+7999", "Lenina 1", []OrderItem{{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(-1)}}, ErrNegativePrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrder(0, tc.firstname, tc.lastname, tc.phone, tc.address, tc.items)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTotalPrice_ExactArithmetic(t *testing.T) {
	order, err := NewOrder(0, "Ivan", "Petrov", "+7999", "Lenina 1", validItems())
	require.NoError(t, err)

	// 3*1.10 + 2*0.20 drifts under binary floats; decimals keep it exact.
	require.True(t, order.TotalPrice().Equal(decimal.RequireFromString("3.70")),
		"got %s", order.TotalPrice())
}

func TestTotalPrice_NoItems(t *testing.T) {
	order := Order{}
	require.True(t, order.TotalPrice().Equal(decimal.Zero))
}

func TestTotalPrice_IgnoresLaterCatalogChanges(t *testing.T) {
	items := []OrderItem{{ProductID: 7, Quantity: 2, Price: decimal.RequireFromString("5.00")}}
	order, err := NewOrder(0, "Ivan", "Petrov", "+7999", "Lenina 1", items)
	require.NoError(t, err)

	// Mutating the caller's slice must not affect the captured items.
	items[0].Price = decimal.RequireFromString("9.99")
	require.True(t, order.TotalPrice().Equal(decimal.RequireFromString("10.00")))
}

func TestDistinctProductIDs_FirstSeenOrder(t *testing.T) {
	order := Order{Items: []OrderItem{
		{ProductID: 5, Quantity: 1},
		{ProductID: 3, Quantity: 1},
		{ProductID: 5, Quantity: 2},
		{ProductID: 8, Quantity: 1},
		{ProductID: 3, Quantity: 4},
	}}
	require.Equal(t, []int64{5, 3, 8}, order.DistinctProductIDs())
}

func TestUpdateStatus(t *testing.T) {
	order, err := NewOrder(0, "Ivan", "Petrov", "+7999", "Lenina 1", validItems())
	require.NoError(t, err)

	require.NoError(t, order.UpdateStatus(StatusDelivering))
	require.Equal(t, StatusDelivering, order.Status)

	require.NoError(t, order.UpdateStatus(""))
	require.Equal(t, StatusUnprocessed, order.Status)

	require.ErrorIs(t, order.UpdateStatus("cancelled"), ErrInvalidStatus)
}

func TestUpdatePayment(t *testing.T) {
	order, err := NewOrder(0, "Ivan", "Petrov", "+7999", "Lenina 1", validItems())
	require.NoError(t, err)

	require.NoError(t, order.UpdatePayment(PaymentElectronic))
	require.Equal(t, PaymentElectronic, order.Payment)

	require.ErrorIs(t, order.UpdatePayment("barter"), ErrInvalidPayment)
}

func TestMarkDelivered_AdvancesStatus(t *testing.T) {
	order, err := NewOrder(0, "Ivan", "Petrov", "+7999", "Lenina 1", validItems())
	require.NoError(t, err)

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order.MarkDelivered(at)

	require.Equal(t, StatusDelivered, order.Status)
	require.NotNil(t, order.DeliveredAt)
	require.Equal(t, at, *order.DeliveredAt)
}
