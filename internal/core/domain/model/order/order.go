package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

// DefaultETA is attached to an order when a courier accepts it.
const DefaultETA = "15-25 mins"

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewPackageOrder, NewFoodOrder or RestoreOrder")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root for a single delivery job.
type Order struct {
	id           string
	customerName string
	route        Route
	status       Status
	createdAt    time.Time
	courierID    *string
	weight       string
	priority     Priority
	eta          string
	orderType    Type
	items        []string

	guard guard.ConstructorGuard
}

// State is the flat form of an order, used to restore seeded orders and to
// project orders into read models.
type State struct {
	ID           string
	CustomerName string
	Route        Route
	Status       Status
	CreatedAt    time.Time
	CourierID    string
	Weight       string
	Priority     Priority
	ETA          string
	Type         Type
	Items        []string
}

// NewPackageOrder books a courier delivery in Pending status.
func NewPackageOrder(
	id string,
	customerName string,
	route Route,
	weight string,
	priority Priority,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		orderType: TypePackage,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setRoute(route),
		o.setWeight(weight),
		o.setPriority(priority),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewFoodOrder creates a marketplace order. Food orders always ship as high
// priority, 1kg parcels.
func NewFoodOrder(id string, customerName string, route Route, items []string, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:    Pending,
		orderType: TypeFood,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setRoute(route),
		o.setWeight("1kg"),
		o.setPriority(PriorityHigh),
		o.setCreatedAt(createdAt),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order in any lifecycle state, enforcing the
// status/courier invariant.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		eta:   s.ETA,
		guard: guard.NewConstructorGuard(),
	}

	var courierID *string
	if s.CourierID != "" {
		id := s.CourierID
		courierID = &id
	}

	orderType := s.Type
	if orderType == "" {
		orderType = TypePackage
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerName(s.CustomerName),
		o.setRoute(s.Route),
		o.setWeight(s.Weight),
		o.setPriority(s.Priority),
		o.setCreatedAt(s.CreatedAt),
		o.setType(orderType),
		o.setStatus(s.Status, courierID),
	); err != nil {
		return nil, err
	}

	if orderType == TypeFood {
		if err := o.setItems(s.Items); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) Route() Route {
	return o.route
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Courier returns the bound courier id, if any.
func (o *Order) Courier() (string, bool) {
	if o.courierID == nil {
		return "", false
	}
	return *o.courierID, true
}

// IsBoundTo reports whether courierID is the courier carrying this order.
func (o *Order) IsBoundTo(courierID string) bool {
	return o.courierID != nil && *o.courierID == courierID
}

func (o *Order) Weight() string {
	return o.weight
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) ETA() string {
	return o.eta
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Items() []string {
	return slices.Clone(o.items)
}

// BelongsToHub matches the locality code embedded in the order id.
func (o *Order) BelongsToHub(hub kernel.Hub) bool {
	return strings.Contains(o.id, "-"+hub.Code()+"-")
}

// State returns a detached flat copy of the order.
func (o *Order) State() State {
	courierID, _ := o.Courier()
	return State{
		ID:           o.id,
		CustomerName: o.customerName,
		Route:        o.route,
		Status:       o.status,
		CreatedAt:    o.createdAt,
		CourierID:    courierID,
		Weight:       o.weight,
		Priority:     o.priority,
		ETA:          o.eta,
		Type:         o.orderType,
		Items:        slices.Clone(o.items),
	}
}

// Clone returns a deep copy that can be mutated without affecting o.
func (o *Order) Clone() *Order {
	c := *o
	c.items = slices.Clone(o.items)
	if o.courierID != nil {
		id := *o.courierID
		c.courierID = &id
	}
	return &c
}

// Assign binds a courier to a Pending order and attaches the default ETA.
func (o *Order) Assign(courierID string) error {
	if strings.TrimSpace(courierID) == "" {
		return errs.NewValueIsRequiredError("courierId")
	}

	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	o.status = Assigned
	o.courierID = &courierID
	o.eta = DefaultETA
	return nil
}

// UpdateStatus moves the order to next. Cancelling drops the courier binding;
// every other target must agree with the current binding.
func (o *Order) UpdateStatus(next Status) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	if next == Cancelled {
		o.status = Cancelled
		o.courierID = nil
		return nil
	}

	if err := next.ValidateCanHaveCourier(o.courierID != nil); err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	o.route = route
	return nil
}

func (o *Order) setWeight(weight string) error {
	if strings.TrimSpace(weight) == "" {
		return errs.NewValueIsRequiredError("weight")
	}
	o.weight = weight
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.orderType = t
	return nil
}

func (o *Order) setItems(items []string) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setStatus(status Status, courierID *string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}
	o.status = status
	o.courierID = courierID
	return nil
}
