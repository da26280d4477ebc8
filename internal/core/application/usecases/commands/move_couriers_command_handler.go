package commands

import (
	"context"

	"speedial/internal/core/domain/services"
)

// MoveCouriersCommandHandler runs the PositionSimulator over the current
// store and writes every courier back in a single unit of work, so readers
// see the whole fleet move at once.
type MoveCouriersCommandHandler struct {
	uowFactory UoWFactory
	simulator  *services.PositionSimulator
}

func NewMoveCouriersCommandHandler(
	uowFactory UoWFactory,
	simulator *services.PositionSimulator,
) MoveCouriersCommandHandler {
	return MoveCouriersCommandHandler{
		uowFactory: uowFactory,
		simulator:  simulator,
	}
}

func (h MoveCouriersCommandHandler) Handle(ctx context.Context, cmd MoveCouriersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, moved := range h.simulator.Tick(orders, couriers) {
		if err = courierRepo.Update(ctx, moved); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
