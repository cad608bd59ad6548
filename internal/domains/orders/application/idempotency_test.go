package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	types "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
)

func TestFingerprintRegisterOrder_Deterministic(t *testing.T) {
	input := validInput()

	first, err := FingerprintRegisterOrder(input)
	require.NoError(t, err)
	second, err := FingerprintRegisterOrder(input)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Len(t, first, 64)
}

func TestFingerprintRegisterOrder_IgnoresIdempotencyKey(t *testing.T) {
	input := validInput()
	withKey := input
	withKey.IdempotencyKey = "key-1"

	plain, err := FingerprintRegisterOrder(input)
	require.NoError(t, err)
	keyed, err := FingerprintRegisterOrder(withKey)
	require.NoError(t, err)

	require.Equal(t, plain, keyed)
}

func TestFingerprintRegisterOrder_SensitiveToPayloadChanges(t *testing.T) {
	input := validInput()
	base, err := FingerprintRegisterOrder(input)
	require.NoError(t, err)

	changedAddress := input
	changedAddress.Address = "Lenina 2"
	addr, err := FingerprintRegisterOrder(changedAddress)
	require.NoError(t, err)
	require.NotEqual(t, base, addr)

	changedQty := validInput()
	changedQty.Products = []types.ProductSelection{
		{ProductID: 10, Quantity: 3},
		{ProductID: 11, Quantity: 1},
	}
	qty, err := FingerprintRegisterOrder(changedQty)
	require.NoError(t, err)
	require.NotEqual(t, base, qty)
}
