package ports

import (
	"context"

	"speedial/internal/core/domain/model/catalogue"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"
)

// ReadModel exposes the last committed store for queries.
// Results are detached copies.
type ReadModel interface {
	Orders(ctx context.Context) ([]order.State, error)
	Couriers(ctx context.Context) ([]courier.State, error)
}

// ProductCatalogue is the marketplace inventory.
type ProductCatalogue interface {
	// Products returns the whole catalogue in display order.
	Products(ctx context.Context) ([]catalogue.Product, error)

	// Find returns the products for ids in the same order, repeating duplicates.
	// An unknown id yields errs.ErrObjectNotFound.
	Find(ctx context.Context, ids []string) ([]catalogue.Product, error)
}
