package http

import (
	"net/http"

	"speedial/internal/adapters/in/http/api"
	"speedial/internal/core/application/usecases/commands"
	"speedial/internal/core/application/usecases/queries"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params api.GetOrdersParams) error {
	var hub kernel.Hub
	if params.Hub != nil {
		parsed, err := kernel.ParseHub(*params.Hub)
		if err != nil {
			return s.fail(ctx, err, "Invalid hub")
		}
		hub = parsed
	}

	var phase queries.Phase
	if params.Phase != nil {
		parsed, err := queries.ParsePhase(*params.Phase)
		if err != nil {
			return s.fail(ctx, err, "Invalid phase")
		}
		phase = parsed
	}

	query, err := queries.NewGetOrdersQuery(hub, phase)
	if err != nil {
		return s.fail(ctx, err, "Invalid orders query")
	}

	orders, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// CreateOrder handles POST /api/v1/orders. The new order id is returned so the
// client can track it straight away.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var booking api.NewBooking
	if err := ctx.Bind(&booking); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	hub, err := kernel.ParseHub(booking.Hub)
	if err != nil {
		return s.fail(ctx, err, "Invalid booking data")
	}

	var weight string
	if booking.Weight != nil {
		weight = *booking.Weight
	}

	var priority order.Priority
	if booking.Priority != nil {
		priority, err = order.ParsePriority(*booking.Priority)
		if err != nil {
			return s.fail(ctx, err, "Invalid booking data")
		}
	}

	orderID, err := withFreshID(
		func() string { return kernel.NewOrderID(hub.Code(), s.rnd) },
		func(id string) error {
			cmd, cmdErr := commands.NewCreateOrderCommand(id, hub, booking.Pickup, booking.Delivery, weight, priority)
			if cmdErr != nil {
				return cmdErr
			}
			return s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
		},
	)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, api.Created{Id: orderID})
}

// PlaceFoodOrder handles POST /api/v1/orders/food. An empty cart places
// nothing and answers 204.
func (s *Server) PlaceFoodOrder(ctx echo.Context) error {
	var cart api.Cart
	if err := ctx.Bind(&cart); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := withFreshID(
		func() string { return kernel.NewOrderID(kernel.FoodPrefix, s.rnd) },
		func(id string) error {
			cmd, cmdErr := commands.NewPlaceFoodOrderCommand(id, cart.ProductIds)
			if cmdErr != nil {
				return cmdErr
			}
			return s.commands.PlaceFoodOrder.Handle(ctx.Request().Context(), cmd)
		},
	)
	if err != nil {
		return s.fail(ctx, err, "Failed to place food order")
	}

	if len(cart.ProductIds) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}
	return ctx.JSON(http.StatusCreated, api.Created{Id: orderID})
}

// AssignCourier handles POST /api/v1/orders/{orderId}/assign. A rejected
// dispatch still answers 204; the reason is raised as a warning notification.
func (s *Server) AssignCourier(ctx echo.Context, orderID string) error {
	var body api.AssignCourierJSONBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, body.CourierId)
	if err != nil {
		return s.fail(ctx, err, "Invalid assignment")
	}

	if err = s.commands.AssignCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to assign courier")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID string) error {
	var body api.UpdateOrderStatusJSONBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status update")
	}

	if err = s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderETA handles GET /api/v1/orders/{orderId}/eta.
func (s *Server) GetOrderETA(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetOrderETAQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	prediction, err := s.queries.GetOrderETA.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to predict arrival")
	}

	return ctx.JSON(http.StatusOK, api.ETAPrediction{Prediction: prediction.Prediction, Context: prediction.Context})
}

// GetOrderMessage handles GET /api/v1/orders/{orderId}/message.
func (s *Server) GetOrderMessage(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetOrderMessageQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	message, err := s.queries.GetOrderMessage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to draft message")
	}

	return ctx.JSON(http.StatusOK, api.OrderMessage{Message: message})
}

// GetReorder handles GET /api/v1/orders/{orderId}/reorder.
func (s *Server) GetReorder(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetReorderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	products, err := s.queries.GetReorder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to rebuild cart")
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}
