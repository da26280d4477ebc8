package http

import (
	"net/http"

	"speedial/internal/adapters/in/http/api"
	"speedial/internal/core/application/advisor"
	"speedial/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetFleetStats handles GET /api/v1/stats.
func (s *Server) GetFleetStats(ctx echo.Context) error {
	stats, err := s.queries.GetFleetStats.Handle(ctx.Request().Context(), queries.NewGetFleetStatsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to compute fleet stats")
	}

	return ctx.JSON(http.StatusOK, api.FleetStats{
		LiveOrders:  stats.LiveOrders,
		Available:   stats.Available,
		ActiveFleet: stats.ActiveFleet,
	})
}

// GetInsights handles GET /api/v1/insights.
func (s *Server) GetInsights(ctx echo.Context) error {
	return s.insights(ctx, false)
}

// RefreshInsights handles POST /api/v1/insights.
func (s *Server) RefreshInsights(ctx echo.Context) error {
	return s.insights(ctx, true)
}

func (s *Server) insights(ctx echo.Context, refresh bool) error {
	insights, err := s.queries.GetFleetInsights.Handle(ctx.Request().Context(), queries.NewGetFleetInsightsQuery(refresh))
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve insights")
	}

	return ctx.JSON(http.StatusOK, toInsights(insights))
}

func toInsights(insights []advisor.Insight) []api.Insight {
	out := make([]api.Insight, 0, len(insights))
	for _, i := range insights {
		out = append(out, api.Insight{Title: i.Title, Description: i.Description, Impact: string(i.Impact)})
	}
	return out
}

// GetTraffic handles GET /api/v1/traffic.
func (s *Server) GetTraffic(ctx echo.Context) error {
	report := s.traffic.Traffic()
	return ctx.JSON(http.StatusOK, api.TrafficReport{
		Abuja:  string(report.Abuja),
		Kaduna: string(report.Kaduna),
		Kano:   string(report.Kano),
	})
}
