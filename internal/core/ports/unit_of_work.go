package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one atomic change to the entity store. Between Begin and
// Commit repositories work on a private copy of the store; Commit publishes it
// as a whole and Rollback throws it away.
type UnitOfWork interface {
	// Begin takes a private copy of the current store.
	Begin(ctx context.Context) error

	// Commit publishes the copy. Returns error if no unit of work is active.
	Commit(ctx context.Context) error

	// Rollback discards the copy. Returns error if no unit of work is active.
	Rollback(ctx context.Context) error

	// CourierRepository returns a repository bound to the private copy.
	CourierRepository() CourierRepository

	// OrderRepository returns a repository bound to the private copy.
	OrderRepository() OrderRepository
}
