package commands

import (
	"context"
	"fmt"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/notification"
	"speedial/internal/core/ports"
)

// CreateCourierCommandHandler adds an idle rider at the hub base and welcomes
// them.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	notifier   ports.Notifier
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory, notifier ports.Notifier) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rider, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.Phone(), cmd.Vehicle(), cmd.Hub())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, rider); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Push(fmt.Sprintf("Registration Complete! Welcome %s.", rider.Name()), notification.SeveritySuccess)
	return nil
}
