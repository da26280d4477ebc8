package commands

import (
	"errors"
	"strings"

	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

var ErrPlaceFoodOrderCommandIsNotConstructed = errors.New(
	"PlaceFoodOrderCommand must be created via NewPlaceFoodOrderCommand constructor",
)

// PlaceFoodOrderCommand checks out a marketplace cart. The cart may be empty;
// the handler then does nothing.
type PlaceFoodOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	productIDs []string

	guard guard.ConstructorGuard
}

func NewPlaceFoodOrderCommand(orderID string, productIDs []string) (PlaceFoodOrderCommand, error) {
	cmd := PlaceFoodOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductIDs(productIDs),
	); err != nil {
		return PlaceFoodOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceFoodOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceFoodOrderCommandIsNotConstructed)
}

func (c PlaceFoodOrderCommand) OrderID() string {
	return c.orderID
}

// ProductIDs returns the cart in the order items were added.
func (c PlaceFoodOrderCommand) ProductIDs() []string {
	out := make([]string, len(c.productIDs))
	copy(out, c.productIDs)
	return out
}

func (c *PlaceFoodOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceFoodOrderCommand) setProductIDs(productIDs []string) error {
	for _, id := range productIDs {
		if strings.TrimSpace(id) == "" {
			return errs.NewValueIsRequiredError("productId")
		}
	}
	c.productIDs = make([]string, len(productIDs))
	copy(c.productIDs, productIDs)
	return nil
}
