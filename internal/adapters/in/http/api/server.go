package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders, newest first
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// Book an express package delivery
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Check out a marketplace cart
	// (POST /api/v1/orders/food)
	PlaceFoodOrder(ctx echo.Context) error
	// Assign a courier to a pending order
	// (POST /api/v1/orders/{orderId}/assign)
	AssignCourier(ctx echo.Context, orderID string) error
	// Write an order status
	// (POST /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderID string) error
	// Predict the remaining delivery time
	// (GET /api/v1/orders/{orderId}/eta)
	GetOrderETA(ctx echo.Context, orderID string) error
	// Draft a customer message for the current status
	// (GET /api/v1/orders/{orderId}/message)
	GetOrderMessage(ctx echo.Context, orderID string) error
	// Catalogue products matching a past food order
	// (GET /api/v1/orders/{orderId}/reorder)
	GetReorder(ctx echo.Context, orderID string) error
	// List the fleet
	// (GET /api/v1/couriers)
	GetCouriers(ctx echo.Context, params GetCouriersParams) error
	// Register a rider
	// (POST /api/v1/couriers)
	CreateCourier(ctx echo.Context) error
	// Switch a rider on or off duty
	// (POST /api/v1/couriers/{courierId}/availability)
	ToggleAvailability(ctx echo.Context, courierID string) error
	// The order a rider is working on
	// (GET /api/v1/couriers/{courierId}/task)
	GetRiderTask(ctx echo.Context, courierID string) error
	// Dispatcher headline counters
	// (GET /api/v1/stats)
	GetFleetStats(ctx echo.Context) error
	// Latest fleet insights
	// (GET /api/v1/insights)
	GetInsights(ctx echo.Context) error
	// Ask for new fleet insights over the current store
	// (POST /api/v1/insights)
	RefreshInsights(ctx echo.Context) error
	// Latest traffic report
	// (GET /api/v1/traffic)
	GetTraffic(ctx echo.Context) error
	// Marketplace catalogue
	// (GET /api/v1/marketplace)
	GetMarketplace(ctx echo.Context, params GetMarketplaceParams) error
	// Price a cart
	// (POST /api/v1/cart/quote)
	QuoteCart(ctx echo.Context) error
	// Live notifications, newest first
	// (GET /api/v1/notifications)
	GetNotifications(ctx echo.Context) error
	// Dismiss a notification
	// (DELETE /api/v1/notifications/{notificationId})
	DismissNotification(ctx echo.Context, notificationID string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "hub", ctx.QueryParams(), &params.Hub); err != nil {
		return badParameter("hub", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "phase", ctx.QueryParams(), &params.Phase); err != nil {
		return badParameter("phase", err)
	}

	return w.Handler.GetOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) PlaceFoodOrder(ctx echo.Context) error {
	return w.Handler.PlaceFoodOrder(ctx)
}

func (w *ServerInterfaceWrapper) AssignCourier(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AssignCourier(ctx, orderID)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderETA(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderETA(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderMessage(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderMessage(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetReorder(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetReorder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetCouriers(ctx echo.Context) error {
	var params GetCouriersParams

	if err := runtime.BindQueryParameter("form", true, false, "hub", ctx.QueryParams(), &params.Hub); err != nil {
		return badParameter("hub", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return badParameter("status", err)
	}

	return w.Handler.GetCouriers(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateCourier(ctx echo.Context) error {
	return w.Handler.CreateCourier(ctx)
}

func (w *ServerInterfaceWrapper) ToggleAvailability(ctx echo.Context) error {
	courierID, err := bindPath(ctx, "courierId")
	if err != nil {
		return err
	}
	return w.Handler.ToggleAvailability(ctx, courierID)
}

func (w *ServerInterfaceWrapper) GetRiderTask(ctx echo.Context) error {
	courierID, err := bindPath(ctx, "courierId")
	if err != nil {
		return err
	}
	return w.Handler.GetRiderTask(ctx, courierID)
}

func (w *ServerInterfaceWrapper) GetFleetStats(ctx echo.Context) error {
	return w.Handler.GetFleetStats(ctx)
}

func (w *ServerInterfaceWrapper) GetInsights(ctx echo.Context) error {
	return w.Handler.GetInsights(ctx)
}

func (w *ServerInterfaceWrapper) RefreshInsights(ctx echo.Context) error {
	return w.Handler.RefreshInsights(ctx)
}

func (w *ServerInterfaceWrapper) GetTraffic(ctx echo.Context) error {
	return w.Handler.GetTraffic(ctx)
}

func (w *ServerInterfaceWrapper) GetMarketplace(ctx echo.Context) error {
	var params GetMarketplaceParams

	if err := runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category); err != nil {
		return badParameter("category", err)
	}

	return w.Handler.GetMarketplace(ctx, params)
}

func (w *ServerInterfaceWrapper) QuoteCart(ctx echo.Context) error {
	return w.Handler.QuoteCart(ctx)
}

func (w *ServerInterfaceWrapper) GetNotifications(ctx echo.Context) error {
	return w.Handler.GetNotifications(ctx)
}

func (w *ServerInterfaceWrapper) DismissNotification(ctx echo.Context) error {
	notificationID, err := bindPath(ctx, "notificationId")
	if err != nil {
		return err
	}
	return w.Handler.DismissNotification(ctx, notificationID)
}

func bindPath(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", badParameter(name, err)
	}
	return value, nil
}

func badParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers with a path prefix so the API
// can be mounted under a group.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/orders", w.GetOrders)
	router.POST(baseURL+"/api/v1/orders", w.CreateOrder)
	router.POST(baseURL+"/api/v1/orders/food", w.PlaceFoodOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/assign", w.AssignCourier)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", w.UpdateOrderStatus)
	router.GET(baseURL+"/api/v1/orders/:orderId/eta", w.GetOrderETA)
	router.GET(baseURL+"/api/v1/orders/:orderId/message", w.GetOrderMessage)
	router.GET(baseURL+"/api/v1/orders/:orderId/reorder", w.GetReorder)
	router.GET(baseURL+"/api/v1/couriers", w.GetCouriers)
	router.POST(baseURL+"/api/v1/couriers", w.CreateCourier)
	router.POST(baseURL+"/api/v1/couriers/:courierId/availability", w.ToggleAvailability)
	router.GET(baseURL+"/api/v1/couriers/:courierId/task", w.GetRiderTask)
	router.GET(baseURL+"/api/v1/stats", w.GetFleetStats)
	router.GET(baseURL+"/api/v1/insights", w.GetInsights)
	router.POST(baseURL+"/api/v1/insights", w.RefreshInsights)
	router.GET(baseURL+"/api/v1/traffic", w.GetTraffic)
	router.GET(baseURL+"/api/v1/marketplace", w.GetMarketplace)
	router.POST(baseURL+"/api/v1/cart/quote", w.QuoteCart)
	router.GET(baseURL+"/api/v1/notifications", w.GetNotifications)
	router.DELETE(baseURL+"/api/v1/notifications/:notificationId", w.DismissNotification)
}
