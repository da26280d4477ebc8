package http

import (
	"net/http"

	"speedial/internal/adapters/in/http/api"
	"speedial/internal/core/application/usecases/queries"
	"speedial/internal/core/domain/model/catalogue"

	"github.com/labstack/echo/v4"
)

// GetMarketplace handles GET /api/v1/marketplace.
func (s *Server) GetMarketplace(ctx echo.Context, params api.GetMarketplaceParams) error {
	var category catalogue.Category
	if params.Category != nil {
		category = catalogue.Category(*params.Category)
	}

	query, err := queries.NewGetMarketplaceQuery(category)
	if err != nil {
		return s.fail(ctx, err, "Invalid category")
	}

	products, err := s.queries.GetMarketplace.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve marketplace")
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}

// QuoteCart handles POST /api/v1/cart/quote.
func (s *Server) QuoteCart(ctx echo.Context) error {
	var cart api.Cart
	if err := ctx.Bind(&cart); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewGetCartQuoteQuery(cart.ProductIds)
	if err != nil {
		return s.fail(ctx, err, "Invalid cart")
	}

	quote, err := s.queries.GetCartQuote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to quote cart")
	}

	return ctx.JSON(http.StatusOK, api.CartQuote{
		Items:       toProducts(quote.Items),
		ItemCount:   quote.Quote.Items,
		Subtotal:    quote.Subtotal,
		DispatchFee: quote.DispatchFee,
		Total:       quote.Total,
	})
}
