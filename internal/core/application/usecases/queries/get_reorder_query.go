package queries

import (
	"context"
	"errors"
	"slices"
	"strings"

	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

var ErrGetReorderQueryIsNotConstructed = errors.New(
	"GetReorderQuery must be created via NewGetReorderQuery constructor",
)

// GetReorderQuery rebuilds a cart from a past food order.
type GetReorderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetReorderQuery(orderID string) (GetReorderQuery, error) {
	if strings.TrimSpace(orderID) == "" {
		return GetReorderQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetReorderQuery{orderID: strings.TrimSpace(orderID), guard: guard.NewConstructorGuard()}, nil
}

func (q GetReorderQuery) Validate() error {
	return q.guard.Validate(ErrGetReorderQueryIsNotConstructed)
}

// GetReorderQueryHandler matches the item names stored on a food order
// against the current catalogue. Each catalogue product appears at most once,
// in catalogue order. Package orders and renamed products give an empty cart.
type GetReorderQueryHandler struct {
	readModel ports.ReadModel
	catalogue ports.ProductCatalogue
}

func NewGetReorderQueryHandler(readModel ports.ReadModel, catalogue ports.ProductCatalogue) GetReorderQueryHandler {
	return GetReorderQueryHandler{readModel: readModel, catalogue: catalogue}
}

func (h GetReorderQueryHandler) Handle(ctx context.Context, query GetReorderQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readModel.Orders(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(orders, func(o order.State) bool { return o.ID == query.orderID })
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.orderID)
	}
	past := orders[i]

	out := make([]ProductResponse, 0, len(past.Items))
	if past.Type != order.TypeFood {
		return out, nil
	}

	products, err := h.catalogue.Products(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if slices.Contains(past.Items, p.Name) {
			out = append(out, newProductResponse(p))
		}
	}
	return out, nil
}
