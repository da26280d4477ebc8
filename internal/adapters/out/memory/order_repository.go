package memory

import (
	"context"
	"errors"
	"slices"

	"speedial/internal/core/domain/model/order"
	"speedial/internal/pkg/errs"
)

// ErrReadOnly is returned for writes made outside an active unit of work.
var ErrReadOnly = errors.New("repository is read only outside a unit of work")

// OrderRepository stores orders in a snapshot. Aggregates go in and come out
// as copies, so callers must Update what they change.
type OrderRepository struct {
	snap func() (*snapshot, bool)
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	snap, writable := r.snap()
	if !writable {
		return ErrReadOnly
	}

	if indexOfOrder(snap.orders, aggregate.ID()) >= 0 {
		return errs.NewObjectExistsError("order", aggregate.ID())
	}
	snap.orders = slices.Insert(snap.orders, 0, aggregate.Clone())
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	snap, writable := r.snap()
	if !writable {
		return ErrReadOnly
	}

	i := indexOfOrder(snap.orders, aggregate.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	snap.orders[i] = aggregate.Clone()
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	snap, _ := r.snap()

	i := indexOfOrder(snap.orders, id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return snap.orders[i].Clone(), nil
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	snap, _ := r.snap()

	out := make([]*order.Order, 0, len(snap.orders))
	for _, o := range snap.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

func indexOfOrder(orders []*order.Order, id string) int {
	return slices.IndexFunc(orders, func(o *order.Order) bool { return o.ID() == id })
}
