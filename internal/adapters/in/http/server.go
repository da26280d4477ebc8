package http

import (
	"log/slog"

	"speedial/internal/adapters/in/http/api"
	"speedial/internal/core/application/advisor"
	"speedial/internal/core/application/usecases/commands"
	"speedial/internal/core/application/usecases/queries"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

var _ api.ServerInterface = (*Server)(nil)

// NotificationCenter is the live notification list shown to dispatchers.
type NotificationCenter interface {
	List() []notification.Notification
	Dismiss(id uuid.UUID) bool
}

// TrafficSource serves the latest traffic report.
type TrafficSource interface {
	Traffic() advisor.TrafficReport
}

// CommandHandlers groups the write side use cases.
type CommandHandlers struct {
	AssignCourier      commands.AssignCourierCommandHandler
	UpdateOrderStatus  commands.UpdateOrderStatusCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	PlaceFoodOrder     commands.PlaceFoodOrderCommandHandler
	CreateCourier      commands.CreateCourierCommandHandler
	ToggleAvailability commands.ToggleAvailabilityCommandHandler
}

// QueryHandlers groups the read side use cases.
type QueryHandlers struct {
	GetOrders        queries.GetOrdersQueryHandler
	GetCouriers      queries.GetCouriersQueryHandler
	GetFleetStats    queries.GetFleetStatsQueryHandler
	GetRiderTask     queries.GetRiderTaskQueryHandler
	GetMarketplace   queries.GetMarketplaceQueryHandler
	GetCartQuote     queries.GetCartQuoteQueryHandler
	GetReorder       queries.GetReorderQueryHandler
	GetOrderETA      queries.GetOrderETAQueryHandler
	GetOrderMessage  queries.GetOrderMessageQueryHandler
	GetFleetInsights queries.GetFleetInsightsQueryHandler
}

// Server implements api.ServerInterface on top of the application use cases.
// It parses wire values into domain values, runs one handler and maps the
// result back to the api types.
type Server struct {
	commands      CommandHandlers
	queries       QueryHandlers
	notifications NotificationCenter
	traffic       TrafficSource
	rnd           kernel.RandomSource
	logger        *slog.Logger
}

// NewServer creates the HTTP server. rnd generates the ids of new orders and
// riders.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	notifications NotificationCenter,
	traffic TrafficSource,
	rnd kernel.RandomSource,
	logger *slog.Logger,
) *Server {
	return &Server{
		commands:      commandHandlers,
		queries:       queryHandlers,
		notifications: notifications,
		traffic:       traffic,
		rnd:           rnd,
		logger:        logger.With("component", "http_server"),
	}
}
