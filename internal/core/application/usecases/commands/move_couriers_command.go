package commands

import (
	"errors"

	"speedial/internal/pkg/guard"
)

// MoveCouriersCommand advances the fleet by one simulation tick.
//
// Example:
//
//	cmd := NewMoveCouriersCommand()
//	handler := NewMoveCouriersCommandHandler(uowFactory, simulator)
//
//	// Run periodically to simulate courier movement
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    logger.Error("tick failed", "error", err)
//	}
type MoveCouriersCommand struct {
	guard guard.ConstructorGuard
}

var ErrMoveCouriersCommandIsNotConstructed = errors.New(
	"MoveCouriersCommand must be created via NewMoveCouriersCommand constructor",
)

func NewMoveCouriersCommand() MoveCouriersCommand {
	return MoveCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *MoveCouriersCommand) Validate() error {
	return c.guard.Validate(ErrMoveCouriersCommandIsNotConstructed)
}
