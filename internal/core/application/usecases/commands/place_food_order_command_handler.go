package commands

import (
	"context"
	"fmt"

	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/notification"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

const FoodDeliveryAddress = "Wuse II, Abuja"

// FoodDeliveryLocation is the fixed customer drop point for marketplace orders.
var FoodDeliveryLocation = kernel.MustLocation(9.0815, 7.4200)

// PlaceFoodOrderCommandHandler turns a cart into a Pending food order picked
// up from the joint of the first item.
type PlaceFoodOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalogue  ports.ProductCatalogue
	notifier   ports.Notifier
	clock      clockwork.Clock
}

func NewPlaceFoodOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalogue ports.ProductCatalogue,
	notifier ports.Notifier,
	clk clockwork.Clock,
) PlaceFoodOrderCommandHandler {
	return PlaceFoodOrderCommandHandler{
		uowFactory: uowFactory,
		catalogue:  catalogue,
		notifier:   notifier,
		clock:      clk,
	}
}

func (h PlaceFoodOrderCommandHandler) Handle(ctx context.Context, cmd PlaceFoodOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ids := cmd.ProductIDs()
	if len(ids) == 0 {
		return nil
	}

	products, err := h.catalogue.Find(ctx, ids)
	if err != nil {
		return err
	}

	first := products[0]
	items := make([]string, 0, len(products))
	for _, p := range products {
		items = append(items, p.Name)
	}

	route := order.Route{
		PickupAddress:   first.PickupAddress(),
		DeliveryAddress: FoodDeliveryAddress,
		Pickup:          kernel.HubAbuja.Location(),
		Delivery:        FoodDeliveryLocation,
	}

	o, err := order.NewFoodOrder(cmd.OrderID(), BookingCustomer, route, items, h.clock.Now())
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

	h.notifier.Push(
		fmt.Sprintf("Food Order Placed! Dispatching rider to %s", first.JointName),
		notification.SeveritySuccess,
	)
	return nil
}
