package memory

import (
	"context"
	"errors"

	"speedial/internal/core/ports"
)

// ErrNoActiveUnitOfWork is returned by Commit and Rollback outside Begin.
var ErrNoActiveUnitOfWork = errors.New("no active unit of work")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds the store's writer slot between Begin and Commit or
// Rollback. Only one unit of work can be active per store; Begin waits for
// the slot or for ctx to end.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// repository calls on uow.OrderRepository() / uow.CourierRepository()
//
//	return uow.Commit(ctx)
type UnitOfWork struct {
	store *Store
	work  *snapshot
}

// Begin copies the current snapshot. Calling Begin twice is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.work != nil {
		return nil
	}

	if err := uow.store.writer.Acquire(ctx, 1); err != nil {
		return err
	}

	uow.work = uow.store.load().clone()
	return nil
}

// Commit publishes the private copy as the new snapshot.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.work == nil {
		return ErrNoActiveUnitOfWork
	}

	uow.store.current.Store(uow.work)
	uow.work = nil
	uow.store.writer.Release(1)
	return nil
}

// Rollback drops the private copy.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.work == nil {
		return ErrNoActiveUnitOfWork
	}

	uow.work = nil
	uow.store.writer.Release(1)
	return nil
}

// CourierRepository works on the private copy, or reads the committed
// snapshot when no unit of work is active.
func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &CourierRepository{snap: uow.target()}
}

// OrderRepository works on the private copy, or reads the committed snapshot
// when no unit of work is active.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{snap: uow.target()}
}

func (uow *UnitOfWork) target() func() (*snapshot, bool) {
	return func() (*snapshot, bool) {
		if uow.work != nil {
			return uow.work, true
		}
		return uow.store.load(), false
	}
}
