package queries

import (
	"context"
	"strings"

	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"
)

// GetOrdersQueryHandler reads orders from the committed store. A hub matches
// when the order id carries the hub's locality code; food orders only appear
// when no hub is selected.
type GetOrdersQueryHandler struct {
	readModel ports.ReadModel
}

func NewGetOrdersQueryHandler(readModel ports.ReadModel) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{readModel: readModel}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	states, err := h.readModel.Orders(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]OrderResponse, 0, len(states))
	for _, s := range states {
		if query.hub != "" && !strings.Contains(s.ID, "-"+query.hub.Code()+"-") {
			continue
		}
		if !inPhase(s.Status, query.phase) {
			continue
		}
		out = append(out, newOrderResponse(s))
	}
	return out, nil
}

func inPhase(status order.Status, phase Phase) bool {
	switch phase {
	case PhaseActive:
		return !status.IsFinal()
	case PhaseHistory:
		return status.IsFinal()
	default:
		return true
	}
}
