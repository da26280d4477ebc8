package queries

import (
	"context"
	"errors"

	"speedial/internal/core/domain/model/catalogue"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/guard"
)

var ErrGetMarketplaceQueryIsNotConstructed = errors.New(
	"GetMarketplaceQuery must be created via NewGetMarketplaceQuery constructor",
)

// GetMarketplaceQuery lists the catalogue, optionally for one category.
type GetMarketplaceQuery struct {
	category catalogue.Category

	guard guard.ConstructorGuard
}

func NewGetMarketplaceQuery(category catalogue.Category) (GetMarketplaceQuery, error) {
	if category != "" {
		if err := category.Validate(); err != nil {
			return GetMarketplaceQuery{}, err
		}
	}
	return GetMarketplaceQuery{category: category, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMarketplaceQuery) Validate() error {
	return q.guard.Validate(ErrGetMarketplaceQueryIsNotConstructed)
}

type GetMarketplaceQueryHandler struct {
	catalogue ports.ProductCatalogue
}

func NewGetMarketplaceQueryHandler(catalogue ports.ProductCatalogue) GetMarketplaceQueryHandler {
	return GetMarketplaceQueryHandler{catalogue: catalogue}
}

func (h GetMarketplaceQueryHandler) Handle(ctx context.Context, query GetMarketplaceQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.catalogue.Products(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		if query.category != "" && p.Category != query.category {
			continue
		}
		out = append(out, newProductResponse(p))
	}
	return out, nil
}
