package commands

import (
	"errors"
	"strings"

	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand asks to bind a courier chosen by a dispatcher to an order.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand("SD-KAN-412", "RID-03")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	courierID string

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(orderID, courierID string) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) OrderID() string {
	return c.orderID
}

func (c AssignCourierCommand) CourierID() string {
	return c.courierID
}

func (c *AssignCourierCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = strings.TrimSpace(orderID)
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID string) error {
	if strings.TrimSpace(courierID) == "" {
		return errs.NewValueIsRequiredError("courierId")
	}
	c.courierID = strings.TrimSpace(courierID)
	return nil
}
