// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, the notification sink, the marketplace
// catalogue and the generative text service.
package ports

import (
	"context"

	"speedial/internal/core/domain/model/courier"
)

// CourierRepository defines the storage contract for courier aggregates.
type CourierRepository interface {
	// Add stores a newly registered courier. Couriers keep registration order.
	// An id that is already stored is refused with errs.ErrObjectExists.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update replaces a stored courier with the same id.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get returns the courier with the given id, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id string) (*courier.Courier, error)

	// GetAll returns every courier in registration order.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}
