package types

import (
	"github.com/shopspring/decimal"

	ordersdomain "github.com/foodcartapp/foodcart-api/internal/domains/orders/domain"
)

// EnrichedOrder is the read-side view of an order decorated with the two
// derived fields: the exact total price and the restaurants able to supply
// the entire order. Neither field is ever persisted; both are recomputed on
// every request.
type EnrichedOrder struct {
	Order                *ordersdomain.Order
	TotalPrice           decimal.Decimal
	CandidateRestaurants []string
	// RequiresManualSelection is set when no single restaurant can fulfill
	// the order. This is an expected business outcome, not an error.
	RequiresManualSelection bool
}
