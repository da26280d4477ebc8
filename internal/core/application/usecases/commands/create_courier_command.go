package commands

import (
	"errors"
	"strings"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a rider with the fleet.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand(kernel.NewCourierID(rnd), "Ada", "0803", courier.VehicleMotorcycle, kernel.HubKano)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register courier: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID string
	name      string
	phone     string
	vehicle   courier.Vehicle
	hub       kernel.Hub

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand validates a registration. The phone may be blank
// and a blank hub means ABUJA.
func NewCreateCourierCommand(
	courierID string,
	name string,
	phone string,
	vehicle courier.Vehicle,
	hub kernel.Hub,
) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setName(name),
		cmd.setVehicle(vehicle),
		cmd.setHub(hub),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) CourierID() string {
	return c.courierID
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) Phone() string {
	return c.phone
}

func (c CreateCourierCommand) Vehicle() courier.Vehicle {
	return c.vehicle
}

func (c CreateCourierCommand) Hub() kernel.Hub {
	return c.hub
}

func (c *CreateCourierCommand) setCourierID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("courierId")
	}
	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return courier.ErrNameIsRequired
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *CreateCourierCommand) setVehicle(vehicle courier.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}

func (c *CreateCourierCommand) setHub(hub kernel.Hub) error {
	if hub == "" {
		c.hub = kernel.HubAbuja
		return nil
	}
	if err := hub.Validate(); err != nil {
		return err
	}
	c.hub = hub
	return nil
}
