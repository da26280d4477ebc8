package order

import (
	"fmt"
	"strings"

	"speedial/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Assigned
	ArrivedPickup
	InTransit
	ArrivedDelivery
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		Assigned:        "Assigned",
		ArrivedPickup:   "Arrived at Pickup",
		InTransit:       "In Transit",
		ArrivedDelivery: "Arrived at Delivery",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

func getStatusKeys() map[string]Status {
	return map[string]Status{
		"PENDING":          Pending,
		"ASSIGNED":         Assigned,
		"ARRIVED_PICKUP":   ArrivedPickup,
		"IN_TRANSIT":       InTransit,
		"ARRIVED_DELIVERY": ArrivedDelivery,
		"DELIVERED":        Delivered,
		"CANCELLED":        Cancelled,
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, ArrivedPickup, InTransit, ArrivedDelivery, Delivered, Cancelled}
}

// ParseStatus accepts either the display name ("Arrived at Pickup") or the
// upper snake key ("ARRIVED_PICKUP").
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	if st, ok := getStatusKeys()[strings.ToUpper(trimmed)]; ok {
		return st, nil
	}
	for st, name := range getStatusStrings() {
		if st != Unknown && strings.EqualFold(name, trimmed) {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Key returns the upper snake form used by the API ("IN_TRANSIT").
func (s Status) Key() string {
	for k, st := range getStatusKeys() {
		if st == s {
			return k
		}
	}
	return "UNKNOWN"
}

// RequiresCourier reports whether orders in this status carry a courier id.
func (s Status) RequiresCourier() bool {
	return s >= Assigned && s <= Delivered
}

// IsFinal reports Delivered and Cancelled.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports orders still in flight (neither delivered nor cancelled).
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsFinal()
}

// Next returns the status a rider advances to from s. The ladder only covers
// courier-bearing statuses; Pending and the final states have no next step.
func (s Status) Next() (Status, bool) {
	switch s { //nolint:exhaustive // only the rider ladder advances
	case Assigned:
		return ArrivedPickup, true
	case ArrivedPickup:
		return InTransit, true
	case InTransit:
		return ArrivedDelivery, true
	case ArrivedDelivery:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// Progress is the completion percentage shown on tracking views.
func (s Status) Progress() int {
	switch s { //nolint:exhaustive // remaining statuses have no progress
	case Pending:
		return 10
	case Assigned:
		return 25
	case ArrivedPickup:
		return 45
	case InTransit:
		return 70
	case ArrivedDelivery:
		return 90
	case Delivered:
		return 100
	default:
		return 0
	}
}

// ValidateCanHaveCourier checks the status/courier invariant: courier-bearing
// statuses must have a courier and all other statuses must not.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && !s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	if !courier && s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}

// ValidateAssign allows assignment from Pending only.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return nil
}

// ValidateTransition checks a status update from s to next. Rewriting the
// current status is always allowed; final statuses cannot be left.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if s == next {
		return nil
	}

	if s.IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is final and cannot change to %s", s, next),
		)
	}

	return nil
}
