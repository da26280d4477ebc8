package commands

import (
	"context"
	"errors"
	"fmt"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/notification"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/domain/services"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler writes an explicit status to an order
// through the StatusTransitionPolicy.
//
// Delivered releases the bound courier and pushes a success notification;
// any other accepted status pushes an info notification, including a rewrite
// of the current one. A status that would break the courier binding rule is
// refused with a warning and nothing changes.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	policy     services.StatusTransitionPolicy
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     services.NewStatusTransitionPolicy(),
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	previous := o.Status()

	var bound *courier.Courier
	if courierID, ok := o.Courier(); ok {
		bound, err = courierRepo.Get(ctx, courierID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	released, err := h.policy.Apply(o, command.Status(), bound)
	if errors.Is(err, errs.ErrValueIsInvalid) {
		h.notifier.Push(
			fmt.Sprintf("Order %s cannot move from %s to %s.", o.ID(), previous, command.Status()),
			notification.SeverityWarning,
		)
		return nil
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if released {
		if err = courierRepo.Update(ctx, bound); err != nil {
			return err
		}
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if command.Status() == order.Delivered {
		h.notifier.Push(fmt.Sprintf("Order %s Delivered! Enjoy your items.", o.ID()), notification.SeveritySuccess)
		return nil
	}
	h.notifier.Push(fmt.Sprintf("Order %s updated to %s", o.ID(), command.Status()), notification.SeverityInfo)
	return nil
}
