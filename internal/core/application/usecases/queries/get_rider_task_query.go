package queries

import (
	"context"
	"errors"
	"strings"

	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

var ErrGetRiderTaskQueryIsNotConstructed = errors.New(
	"GetRiderTaskQuery must be created via NewGetRiderTaskQuery constructor",
)

// GetRiderTaskQuery finds the job a rider is working on.
type GetRiderTaskQuery struct {
	courierID string

	guard guard.ConstructorGuard
}

func NewGetRiderTaskQuery(courierID string) (GetRiderTaskQuery, error) {
	if strings.TrimSpace(courierID) == "" {
		return GetRiderTaskQuery{}, errs.NewValueIsRequiredError("courierId")
	}
	return GetRiderTaskQuery{courierID: strings.TrimSpace(courierID), guard: guard.NewConstructorGuard()}, nil
}

func (q GetRiderTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderTaskQueryIsNotConstructed)
}

// RiderTaskResponse is the rider's view. Task is nil when the rider has
// nothing to do; NextStatus is Unknown when the task has no further step.
type RiderTaskResponse struct {
	Rider      CourierResponse
	Task       *OrderResponse
	NextStatus order.Status
}

// GetRiderTaskQueryHandler picks the newest order bound to the rider that is
// not Delivered.
type GetRiderTaskQueryHandler struct {
	readModel ports.ReadModel
}

func NewGetRiderTaskQueryHandler(readModel ports.ReadModel) GetRiderTaskQueryHandler {
	return GetRiderTaskQueryHandler{readModel: readModel}
}

func (h GetRiderTaskQueryHandler) Handle(ctx context.Context, query GetRiderTaskQuery) (RiderTaskResponse, error) {
	if err := query.Validate(); err != nil {
		return RiderTaskResponse{}, err
	}

	couriers, err := h.readModel.Couriers(ctx)
	if err != nil {
		return RiderTaskResponse{}, err
	}

	var resp RiderTaskResponse
	found := false
	for _, c := range couriers {
		if c.ID == query.courierID {
			resp.Rider = newCourierResponse(c)
			found = true
			break
		}
	}
	if !found {
		return RiderTaskResponse{}, errs.NewObjectNotFoundError("courierId", query.courierID)
	}

	orders, err := h.readModel.Orders(ctx)
	if err != nil {
		return RiderTaskResponse{}, err
	}

	for _, o := range orders {
		if o.CourierID != query.courierID || o.Status == order.Delivered {
			continue
		}
		task := newOrderResponse(o)
		resp.Task = &task
		if next, ok := o.Status.Next(); ok {
			resp.NextStatus = next
		}
		break
	}
	return resp, nil
}
