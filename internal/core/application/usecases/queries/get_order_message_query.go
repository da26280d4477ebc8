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

var ErrGetOrderMessageQueryIsNotConstructed = errors.New(
	"GetOrderMessageQuery must be created via NewGetOrderMessageQuery constructor",
)

// MessageWriter drafts a customer facing message about an order status.
type MessageWriter interface {
	OrderUpdateMessage(ctx context.Context, orderID string, status order.Status) string
}

// GetOrderMessageQuery drafts an update message for the order's current status.
type GetOrderMessageQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderMessageQuery(orderID string) (GetOrderMessageQuery, error) {
	if strings.TrimSpace(orderID) == "" {
		return GetOrderMessageQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return GetOrderMessageQuery{orderID: strings.TrimSpace(orderID), guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderMessageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderMessageQueryIsNotConstructed)
}

type GetOrderMessageQueryHandler struct {
	readModel ports.ReadModel
	writer    MessageWriter
}

func NewGetOrderMessageQueryHandler(readModel ports.ReadModel, writer MessageWriter) GetOrderMessageQueryHandler {
	return GetOrderMessageQueryHandler{readModel: readModel, writer: writer}
}

func (h GetOrderMessageQueryHandler) Handle(ctx context.Context, query GetOrderMessageQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	o, err := findOrder(ctx, h.readModel, query.orderID)
	if err != nil {
		return "", err
	}

	return h.writer.OrderUpdateMessage(ctx, o.ID, o.Status), nil
}
