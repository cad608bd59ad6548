package projection

import "time"

// Metadata captures the persistence timestamps attached to stored aggregates.
type Metadata struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Projection pairs an aggregate with its persistence metadata so read models
// can expose storage timestamps without leaking them into the domain types.
type Projection[T any] struct {
	Entity   T
	Metadata Metadata
}

// New wraps an aggregate with its persistence metadata.
func New[T any](entity T, createdAt, updatedAt time.Time) *Projection[T] {
	return &Projection[T]{
		Entity:   entity,
		Metadata: Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt},
	}
}
