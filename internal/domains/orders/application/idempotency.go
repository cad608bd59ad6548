package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	types "github.com/foodcartapp/foodcart-api/internal/domains/orders/application/types"
)

type normalizedRegisterOrder struct {
	Firstname   string                `json:"firstname"`
	Lastname    string                `json:"lastname"`
	Phonenumber string                `json:"phonenumber"`
	Address     string                `json:"address"`
	Comment     string                `json:"comment,omitempty"`
	Products    []normalizedSelection `json:"products"`
}

type normalizedSelection struct {
	ProductID int64 `json:"product"`
	Quantity  int32 `json:"quantity"`
}

// FingerprintRegisterOrder builds a deterministic hash of the intake payload
// (excluding the idempotency key) so replays with a changed body are detected.
func FingerprintRegisterOrder(input types.RegisterOrderInput) (string, error) {
	normalized := normalizedRegisterOrder{
		Firstname:   input.Firstname,
		Lastname:    input.Lastname,
		Phonenumber: input.Phonenumber,
		Address:     input.Address,
		Comment:     input.Comment,
		Products:    make([]normalizedSelection, 0, len(input.Products)),
	}
	for _, selection := range input.Products {
		normalized.Products = append(normalized.Products, normalizedSelection{
			ProductID: selection.ProductID,
			Quantity:  selection.Quantity,
		})
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
