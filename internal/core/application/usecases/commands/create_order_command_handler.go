package commands

import (
	"context"
	"fmt"

	"speedial/internal/core/domain/model/notification"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// CreateOrderCommandHandler stores a new Pending package order and announces
// the booking.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	clock      clockwork.Clock
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	clk clockwork.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clk,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewPackageOrder(
		cmd.OrderID(),
		BookingCustomer,
		cmd.Route(),
		cmd.Weight(),
		cmd.Priority(),
		h.clock.Now(),
	)
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

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Push(fmt.Sprintf("Express Dispatch Booked: %s", o.ID()), notification.SeverityInfo)
	return nil
}
