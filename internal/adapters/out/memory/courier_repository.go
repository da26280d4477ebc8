package memory

import (
	"context"
	"slices"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/pkg/errs"
)

// CourierRepository stores couriers in a snapshot, in registration order.
type CourierRepository struct {
	snap func() (*snapshot, bool)
}

func (r *CourierRepository) Add(_ context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	snap, writable := r.snap()
	if !writable {
		return ErrReadOnly
	}

	if indexOfCourier(snap.couriers, c.ID()) >= 0 {
		return errs.NewObjectExistsError("courier", c.ID())
	}
	snap.couriers = append(snap.couriers, c.Clone())
	return nil
}

func (r *CourierRepository) Update(_ context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	snap, writable := r.snap()
	if !writable {
		return ErrReadOnly
	}

	i := indexOfCourier(snap.couriers, c.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("courier", c.ID())
	}
	snap.couriers[i] = c.Clone()
	return nil
}

func (r *CourierRepository) Get(_ context.Context, id string) (*courier.Courier, error) {
	snap, _ := r.snap()

	i := indexOfCourier(snap.couriers, id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return snap.couriers[i].Clone(), nil
}

func (r *CourierRepository) GetAll(_ context.Context) ([]*courier.Courier, error) {
	snap, _ := r.snap()

	out := make([]*courier.Courier, 0, len(snap.couriers))
	for _, c := range snap.couriers {
		out = append(out, c.Clone())
	}
	return out, nil
}

func indexOfCourier(couriers []*courier.Courier, id string) int {
	return slices.IndexFunc(couriers, func(c *courier.Courier) bool { return c.ID() == id })
}
