package queries

import (
	"context"
	"errors"

	"speedial/internal/core/application/advisor"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/guard"
)

var ErrGetFleetInsightsQueryIsNotConstructed = errors.New(
	"GetFleetInsightsQuery must be created via NewGetFleetInsightsQuery constructor",
)

// InsightsAdvisor produces and caches fleet strategy tips.
type InsightsAdvisor interface {
	FleetInsights(ctx context.Context, orders []order.State, couriers []courier.State) []advisor.Insight
	Insights() []advisor.Insight
}

// GetFleetInsightsQuery returns the cached insights, or asks for new ones
// over the current store when refresh is set.
type GetFleetInsightsQuery struct {
	refresh bool

	guard guard.ConstructorGuard
}

func NewGetFleetInsightsQuery(refresh bool) GetFleetInsightsQuery {
	return GetFleetInsightsQuery{refresh: refresh, guard: guard.NewConstructorGuard()}
}

func (q GetFleetInsightsQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetInsightsQueryIsNotConstructed)
}

type GetFleetInsightsQueryHandler struct {
	readModel ports.ReadModel
	advisor   InsightsAdvisor
}

func NewGetFleetInsightsQueryHandler(readModel ports.ReadModel, advisor InsightsAdvisor) GetFleetInsightsQueryHandler {
	return GetFleetInsightsQueryHandler{readModel: readModel, advisor: advisor}
}

// Handle never returns nil insights: before the first refresh the list is empty.
func (h GetFleetInsightsQueryHandler) Handle(ctx context.Context, query GetFleetInsightsQuery) ([]advisor.Insight, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.refresh {
		if cached := h.advisor.Insights(); cached != nil {
			return cached, nil
		}
		return []advisor.Insight{}, nil
	}

	orders, err := h.readModel.Orders(ctx)
	if err != nil {
		return nil, err
	}
	couriers, err := h.readModel.Couriers(ctx)
	if err != nil {
		return nil, err
	}

	return h.advisor.FleetInsights(ctx, orders, couriers), nil
}
