package commands

import (
	"errors"
	"strings"

	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

var ErrToggleAvailabilityCommandIsNotConstructed = errors.New(
	"ToggleAvailabilityCommand must be created via NewToggleAvailabilityCommand constructor",
)

// ToggleAvailabilityCommand switches a rider on or off duty.
type ToggleAvailabilityCommand struct { //nolint:recvcheck //using for validation
	courierID string
	online    bool

	guard guard.ConstructorGuard
}

func NewToggleAvailabilityCommand(courierID string, online bool) (ToggleAvailabilityCommand, error) {
	if strings.TrimSpace(courierID) == "" {
		return ToggleAvailabilityCommand{}, errs.NewValueIsRequiredError("courierId")
	}

	return ToggleAvailabilityCommand{
		courierID: strings.TrimSpace(courierID),
		online:    online,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ToggleAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleAvailabilityCommandIsNotConstructed)
}

func (c ToggleAvailabilityCommand) CourierID() string {
	return c.courierID
}

func (c ToggleAvailabilityCommand) Online() bool {
	return c.online
}
