package queries

import (
	"context"

	"speedial/internal/core/ports"
)

type GetCouriersQueryHandler struct {
	readModel ports.ReadModel
}

func NewGetCouriersQueryHandler(readModel ports.ReadModel) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{readModel: readModel}
}

func (h GetCouriersQueryHandler) Handle(ctx context.Context, query GetCouriersQuery) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	states, err := h.readModel.Couriers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CourierResponse, 0, len(states))
	for _, s := range states {
		if query.hub != "" && s.Hub != query.hub {
			continue
		}
		if query.status != "" && s.Status != query.status {
			continue
		}
		out = append(out, newCourierResponse(s))
	}
	return out, nil
}
