package services

import (
	"errors"
	"fmt"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"
)

// ErrCourierUnavailable is returned when the selected courier is missing or offline.
var ErrCourierUnavailable = errors.New("courier is unavailable")

// AssignmentPolicy binds an order to a courier chosen by a dispatcher.
//
// Business rules:
//   - The courier must exist and must not be offline
//   - The order must be Pending. An Assigned order is not re-dispatched; its
//     rider stays bound until the order moves on or is cancelled
//   - No geographic or capacity reasoning is applied: a busy courier can take
//     another order
//   - On success the order is Assigned with the default ETA and the courier is busy
//
// Both aggregates are checked before either is changed, so a refused assignment
// leaves them untouched.
type AssignmentPolicy struct{}

func NewAssignmentPolicy() AssignmentPolicy {
	return AssignmentPolicy{}
}

// Assign binds o to c. A nil courier is reported as ErrCourierUnavailable.
func (p AssignmentPolicy) Assign(o *order.Order, c *courier.Courier) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if c == nil {
		return ErrCourierUnavailable
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsOffline() {
		return fmt.Errorf("%w: %w", ErrCourierUnavailable, courier.ErrCourierIsOffline)
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return err
	}

	if err := o.Assign(c.ID()); err != nil {
		return err
	}
	return c.Assign()
}
