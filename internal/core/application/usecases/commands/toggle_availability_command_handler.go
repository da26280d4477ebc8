package commands

import (
	"context"

	"speedial/internal/core/domain/model/notification"
	"speedial/internal/core/ports"
)

const (
	MsgOnline  = "You are now ONLINE"
	MsgOffline = "You are now OFFLINE"
)

// ToggleAvailabilityCommandHandler sets a rider idle when going online and
// offline otherwise. Going online always lands on idle, even for a rider who
// still carries an order.
type ToggleAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
	notifier   ports.Notifier
}

func NewToggleAvailabilityCommandHandler(
	uowFactory CourierUoWFactory,
	notifier ports.Notifier,
) ToggleAvailabilityCommandHandler {
	return ToggleAvailabilityCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h ToggleAvailabilityCommandHandler) Handle(ctx context.Context, cmd ToggleAvailabilityCommand) error {
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
	rider, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	rider.SetAvailability(cmd.Online())

	if err = courierRepo.Update(ctx, rider); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Online() {
		h.notifier.Push(MsgOnline, notification.SeveritySuccess)
	} else {
		h.notifier.Push(MsgOffline, notification.SeverityWarning)
	}
	return nil
}
