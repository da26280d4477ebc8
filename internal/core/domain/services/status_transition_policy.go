package services

import (
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"
)

// StatusTransitionPolicy applies an explicit status update to an order.
//
// Business rules:
//   - Rewriting the current status is accepted
//   - Delivered and Cancelled are final
//   - The courier invariant on the order is never broken
//   - When the order is Delivered or Cancelled its courier is released to idle
type StatusTransitionPolicy struct{}

func NewStatusTransitionPolicy() StatusTransitionPolicy {
	return StatusTransitionPolicy{}
}

// Apply moves o to next. bound is the courier carrying o before the update, or
// nil when the order has none. It reports whether bound was released.
func (p StatusTransitionPolicy) Apply(o *order.Order, next order.Status, bound *courier.Courier) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if err := o.UpdateStatus(next); err != nil {
		return false, err
	}

	if bound == nil || !next.IsFinal() {
		return false, nil
	}

	bound.Release()
	return true, nil
}
