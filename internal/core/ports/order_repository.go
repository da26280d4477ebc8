package ports

import (
	"context"

	"speedial/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add stores a new order ahead of all existing ones. An id that is already
	// stored is refused with errs.ErrObjectExists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces a stored order with the same id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given id, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll returns every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
