package queries

import (
	"context"
	"errors"
	"strings"

	"speedial/internal/core/domain/model/catalogue"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

var ErrGetCartQuoteQueryIsNotConstructed = errors.New(
	"GetCartQuoteQuery must be created via NewGetCartQuoteQuery constructor",
)

// GetCartQuoteQuery prices a cart. The same product may appear several times.
type GetCartQuoteQuery struct {
	productIDs []string

	guard guard.ConstructorGuard
}

func NewGetCartQuoteQuery(productIDs []string) (GetCartQuoteQuery, error) {
	for _, id := range productIDs {
		if strings.TrimSpace(id) == "" {
			return GetCartQuoteQuery{}, errs.NewValueIsRequiredError("productId")
		}
	}

	ids := make([]string, len(productIDs))
	copy(ids, productIDs)
	return GetCartQuoteQuery{productIDs: ids, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQuoteQueryIsNotConstructed)
}

// CartQuoteResponse lists the resolved items next to the totals.
type CartQuoteResponse struct {
	Items []ProductResponse
	catalogue.Quote
}

type GetCartQuoteQueryHandler struct {
	catalogue ports.ProductCatalogue
}

func NewGetCartQuoteQueryHandler(catalogue ports.ProductCatalogue) GetCartQuoteQueryHandler {
	return GetCartQuoteQueryHandler{catalogue: catalogue}
}

// Handle prices the cart. An empty cart still carries the dispatch fee.
func (h GetCartQuoteQueryHandler) Handle(ctx context.Context, query GetCartQuoteQuery) (CartQuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return CartQuoteResponse{}, err
	}

	if len(query.productIDs) == 0 {
		return CartQuoteResponse{Items: []ProductResponse{}, Quote: catalogue.NewQuote(nil)}, nil
	}

	products, err := h.catalogue.Find(ctx, query.productIDs)
	if err != nil {
		return CartQuoteResponse{}, err
	}

	return CartQuoteResponse{
		Items: newProductResponses(products),
		Quote: catalogue.NewQuote(products),
	}, nil
}
