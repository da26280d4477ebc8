package commands

import (
	"errors"
	"strings"

	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

const (
	// DefaultWeight is used when a booking leaves the weight blank.
	DefaultWeight = "2kg"

	// BookingCustomer is the customer name attached to express bookings.
	BookingCustomer = "Customer"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand books an express package delivery inside one hub.
// The caller generates the order id so it can be returned before the handler
// runs.
//
// Example:
//
//	orderID := kernel.NewOrderID(kernel.HubKano.Code(), rnd)
//	cmd, err := NewCreateOrderCommand(orderID, kernel.HubKano, "Sabon Gari", "Nassarawa GRA", "", "")
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book delivery: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	hub      kernel.Hub
	pickup   string
	delivery string
	weight   string
	priority order.Priority

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates a booking. A blank weight defaults to 2kg
// and a blank priority to medium.
func NewCreateOrderCommand(
	orderID string,
	hub kernel.Hub,
	pickup string,
	delivery string,
	weight string,
	priority order.Priority,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setHub(hub),
		cmd.setAddresses(pickup, delivery),
		cmd.setWeight(weight),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

func (c CreateOrderCommand) Hub() kernel.Hub {
	return c.hub
}

// Route qualifies both addresses with the hub name and uses the hub's fixed
// pickup and drop-off coordinates.
func (c CreateOrderCommand) Route() order.Route {
	return order.Route{
		PickupAddress:   c.pickup + ", " + c.hub.String(),
		DeliveryAddress: c.delivery + ", " + c.hub.String(),
		Pickup:          c.hub.Location(),
		Delivery:        c.hub.DropOff(),
	}
}

func (c CreateOrderCommand) Weight() string {
	return c.weight
}

func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setHub(hub kernel.Hub) error {
	if err := hub.Validate(); err != nil {
		return err
	}
	c.hub = hub
	return nil
}

func (c *CreateOrderCommand) setAddresses(pickup, delivery string) error {
	var errList []error
	if strings.TrimSpace(pickup) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("pickup"))
	}
	if strings.TrimSpace(delivery) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("delivery"))
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	c.pickup = strings.TrimSpace(pickup)
	c.delivery = strings.TrimSpace(delivery)
	return nil
}

func (c *CreateOrderCommand) setWeight(weight string) error {
	c.weight = strings.TrimSpace(weight)
	if c.weight == "" {
		c.weight = DefaultWeight
	}
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if priority == "" {
		c.priority = order.PriorityMedium
		return nil
	}
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
