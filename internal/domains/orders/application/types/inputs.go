package types

// ProductSelection is one submitted line of an intake payload.
type ProductSelection struct {
	ProductID int64
	Quantity  int32
}

// RegisterOrderInput carries a validated-shape intake submission. Prices are
// deliberately absent: they are captured from the catalog at registration time.
type RegisterOrderInput struct {
	Firstname      string
	Lastname       string
	Phonenumber    string
	Address        string
	Comment        string
	Products       []ProductSelection
	IdempotencyKey string
}

// UpdateOrderInput carries the admin-side mutable fields. Nil pointers mean
// "leave unchanged" so partial updates do not clobber stored values.
type UpdateOrderInput struct {
	ID            int64
	Status        *string
	Payment       *string
	Comment       *string
	MarkCalled    bool
	MarkDelivered bool
}
