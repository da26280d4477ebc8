package commands

import (
	"context"
	"errors"
	"fmt"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/notification"
	"speedial/internal/core/domain/services"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/errs"
)

// MsgRiderOffline is pushed when the chosen courier is missing or offline.
const MsgRiderOffline = "Rider is currently offline."

// AssignCourierCommandHandler binds an order to a courier through the
// AssignmentPolicy.
//
// Outcomes:
//   - courier missing or offline: nothing changes, one warning notification
//   - order missing: nothing changes, no notification, errs.ErrObjectNotFound
//   - order not Pending: nothing changes, one warning notification
//   - success: order Assigned, courier busy, one info notification
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	policy     services.AssignmentPolicy
}

func NewAssignCourierCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     services.NewAssignmentPolicy(),
	}
}

func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	rider, err := courierRepo.Get(ctx, command.CourierID())
	if errors.Is(err, errs.ErrObjectNotFound) || (err == nil && rider.IsOffline()) {
		h.notifier.Push(MsgRiderOffline, notification.SeverityWarning)
		return nil
	}
	if err != nil {
		return err
	}

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.Assign(o, rider); err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			h.notifier.Push(
				fmt.Sprintf("Order %s is %s and cannot be dispatched.", o.ID(), o.Status()),
				notification.SeverityWarning,
			)
			return nil
		}
		if errors.Is(err, services.ErrCourierUnavailable) || errors.Is(err, courier.ErrCourierIsOffline) {
			h.notifier.Push(MsgRiderOffline, notification.SeverityWarning)
			return nil
		}
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = courierRepo.Update(ctx, rider); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Push(
		fmt.Sprintf("Dispatch Assigned: Order %s sent to %s", o.ID(), rider.Name()),
		notification.SeverityInfo,
	)
	return nil
}
