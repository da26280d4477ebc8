package queries

import (
	"errors"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery lists the fleet in registration order. Empty filters
// match everything.
type GetCouriersQuery struct {
	hub    kernel.Hub
	status courier.Status

	guard guard.ConstructorGuard
}

func NewGetCouriersQuery(hub kernel.Hub, status courier.Status) (GetCouriersQuery, error) {
	var errList []error
	if hub != "" {
		errList = append(errList, hub.Validate())
	}
	if status != "" {
		errList = append(errList, status.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return GetCouriersQuery{}, err
	}

	return GetCouriersQuery{hub: hub, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}
