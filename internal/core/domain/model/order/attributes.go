package order

import (
	"errors"
	"fmt"
	"strings"

	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/pkg/errs"
)

// Priority ranks bookings for dispatchers.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", string(p)))
	}
}

// Type distinguishes courier bookings from marketplace food orders.
type Type string

const (
	TypePackage Type = "package"
	TypeFood    Type = "food"
)

func (t Type) Validate() error {
	switch t {
	case TypePackage, TypeFood:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%q is not a valid order type", string(t)))
	}
}

// Route pairs the free-text addresses with the coordinates used for simulation.
type Route struct {
	PickupAddress   string
	DeliveryAddress string
	Pickup          kernel.Location
	Delivery        kernel.Location
}

func (r Route) Validate() error {
	var errList []error
	if strings.TrimSpace(r.PickupAddress) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("pickupAddress"))
	}
	if strings.TrimSpace(r.DeliveryAddress) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("deliveryAddress"))
	}
	errList = append(errList, r.Pickup.Validate(), r.Delivery.Validate())
	return errors.Join(errList...)
}
