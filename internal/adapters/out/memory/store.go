// Package memory is the in-process entity store. The store holds an immutable
// snapshot of all orders and couriers; every change is made on a private copy
// inside a unit of work and published by swapping the snapshot pointer, so
// readers always see a complete state.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"

	"speedial/internal/core/domain/model/catalogue"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/pkg/errs"

	"golang.org/x/sync/semaphore"
)

var ErrProductIDsAreRequired = errs.NewValueIsRequiredError("productIds")

// snapshot is one complete store state. Published snapshots are never mutated.
type snapshot struct {
	orders   []*order.Order // newest first
	couriers []*courier.Courier
}

func (s *snapshot) clone() *snapshot {
	cp := &snapshot{
		orders:   make([]*order.Order, 0, len(s.orders)),
		couriers: make([]*courier.Courier, 0, len(s.couriers)),
	}
	for _, o := range s.orders {
		cp.orders = append(cp.orders, o.Clone())
	}
	for _, c := range s.couriers {
		cp.couriers = append(cp.couriers, c.Clone())
	}
	return cp
}

// Store owns the current snapshot and serialises writers. It also serves the
// read model and the marketplace catalogue.
type Store struct {
	writer   *semaphore.Weighted
	current  atomic.Pointer[snapshot]
	products []catalogue.Product
}

// NewStore builds a store from a seed. Seed orders are given newest first.
func NewStore(seed Seed) (*Store, error) {
	initial := &snapshot{}
	for _, o := range seed.Orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if indexOfOrder(initial.orders, o.ID()) >= 0 {
			return nil, errs.NewObjectExistsError("order", o.ID())
		}
		initial.orders = append(initial.orders, o.Clone())
	}
	for _, c := range seed.Couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if indexOfCourier(initial.couriers, c.ID()) >= 0 {
			return nil, errs.NewObjectExistsError("courier", c.ID())
		}
		initial.couriers = append(initial.couriers, c.Clone())
	}

	s := &Store{
		writer:   semaphore.NewWeighted(1),
		products: slices.Clone(seed.Products),
	}
	s.current.Store(initial)
	return s, nil
}

func (s *Store) load() *snapshot {
	return s.current.Load()
}

// Orders returns the committed orders, newest first.
func (s *Store) Orders(_ context.Context) ([]order.State, error) {
	snap := s.load()
	out := make([]order.State, 0, len(snap.orders))
	for _, o := range snap.orders {
		out = append(out, o.State())
	}
	return out, nil
}

// Couriers returns the committed couriers in registration order.
func (s *Store) Couriers(_ context.Context) ([]courier.State, error) {
	snap := s.load()
	out := make([]courier.State, 0, len(snap.couriers))
	for _, c := range snap.couriers {
		out = append(out, c.State())
	}
	return out, nil
}

// Products returns the marketplace catalogue in display order.
func (s *Store) Products(_ context.Context) ([]catalogue.Product, error) {
	return slices.Clone(s.products), nil
}

// Find resolves product ids in order, keeping duplicates.
func (s *Store) Find(_ context.Context, ids []string) ([]catalogue.Product, error) {
	if len(ids) == 0 {
		return nil, ErrProductIDsAreRequired
	}

	var errList []error
	out := make([]catalogue.Product, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(s.products, func(p catalogue.Product) bool { return p.ID == id })
		if i < 0 {
			errList = append(errList, errs.NewObjectNotFoundError("product", id))
			continue
		}
		out = append(out, s.products[i])
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return out, nil
}
