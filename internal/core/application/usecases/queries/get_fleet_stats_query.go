package queries

import (
	"context"
	"errors"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/guard"
)

var ErrGetFleetStatsQueryIsNotConstructed = errors.New(
	"GetFleetStatsQuery must be created via NewGetFleetStatsQuery constructor",
)

type GetFleetStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFleetStatsQuery() GetFleetStatsQuery {
	return GetFleetStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFleetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetStatsQueryIsNotConstructed)
}

// FleetStatsResponse holds the dispatcher headline counters.
type FleetStatsResponse struct {
	// LiveOrders counts every order that is not Delivered. Cancelled orders
	// are included.
	LiveOrders int
	// Available counts idle couriers.
	Available int
	// ActiveFleet counts couriers that are not offline.
	ActiveFleet int
}

type GetFleetStatsQueryHandler struct {
	readModel ports.ReadModel
}

func NewGetFleetStatsQueryHandler(readModel ports.ReadModel) GetFleetStatsQueryHandler {
	return GetFleetStatsQueryHandler{readModel: readModel}
}

func (h GetFleetStatsQueryHandler) Handle(ctx context.Context, query GetFleetStatsQuery) (FleetStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return FleetStatsResponse{}, err
	}

	orders, err := h.readModel.Orders(ctx)
	if err != nil {
		return FleetStatsResponse{}, err
	}
	couriers, err := h.readModel.Couriers(ctx)
	if err != nil {
		return FleetStatsResponse{}, err
	}

	var stats FleetStatsResponse
	for _, o := range orders {
		if o.Status != order.Delivered {
			stats.LiveOrders++
		}
	}
	for _, c := range couriers {
		if c.Status == courier.StatusIdle {
			stats.Available++
		}
		if c.Status != courier.StatusOffline {
			stats.ActiveFleet++
		}
	}
	return stats, nil
}
