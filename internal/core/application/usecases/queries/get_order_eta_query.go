package queries

import (
	"context"
	"errors"
	"slices"
	"strings"

	"speedial/internal/core/application/advisor"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

var ErrGetOrderETAQueryIsNotConstructed = errors.New(
	"GetOrderETAQuery must be created via NewGetOrderETAQuery constructor",
)

// ETAPredictor estimates the remaining delivery time of an order.
type ETAPredictor interface {
	PredictETA(ctx context.Context, o order.State, c *courier.State) advisor.ETAPrediction
}

// GetOrderETAQuery asks the advisor for a fresh arrival estimate.
type GetOrderETAQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderETAQuery(orderID string) (GetOrderETAQuery, error) {
	if strings.TrimSpace(orderID) == "" {
		return GetOrderETAQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetOrderETAQuery{orderID: strings.TrimSpace(orderID), guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderETAQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderETAQueryIsNotConstructed)
}

type GetOrderETAQueryHandler struct {
	readModel ports.ReadModel
	predictor ETAPredictor
}

func NewGetOrderETAQueryHandler(readModel ports.ReadModel, predictor ETAPredictor) GetOrderETAQueryHandler {
	return GetOrderETAQueryHandler{readModel: readModel, predictor: predictor}
}

// Handle resolves the order and its courier, if any, and returns the
// prediction. Generation failures come back as the advisor's fallback.
func (h GetOrderETAQueryHandler) Handle(ctx context.Context, query GetOrderETAQuery) (advisor.ETAPrediction, error) {
	if err := query.Validate(); err != nil {
		return advisor.ETAPrediction{}, err
	}

	o, err := findOrder(ctx, h.readModel, query.orderID)
	if err != nil {
		return advisor.ETAPrediction{}, err
	}

	var rider *courier.State
	if o.CourierID != "" {
		couriers, err := h.readModel.Couriers(ctx)
		if err != nil {
			return advisor.ETAPrediction{}, err
		}
		if i := slices.IndexFunc(couriers, func(c courier.State) bool { return c.ID == o.CourierID }); i >= 0 {
			rider = &couriers[i]
		}
	}

	return h.predictor.PredictETA(ctx, o, rider), nil
}

func findOrder(ctx context.Context, readModel ports.ReadModel, id string) (order.State, error) {
	orders, err := readModel.Orders(ctx)
	if err != nil {
		return order.State{}, err
	}
	i := slices.IndexFunc(orders, func(o order.State) bool { return o.ID == id })
	if i < 0 {
		return order.State{}, errs.NewObjectNotFoundError("orderId", id)
	}
	return orders[i], nil
}
