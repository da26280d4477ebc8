package http

import (
	"net/http"

	"speedial/internal/adapters/in/http/api"
	"speedial/internal/core/application/usecases/commands"
	"speedial/internal/core/application/usecases/queries"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context, params api.GetCouriersParams) error {
	var hub kernel.Hub
	if params.Hub != nil {
		parsed, err := kernel.ParseHub(*params.Hub)
		if err != nil {
			return s.fail(ctx, err, "Invalid hub")
		}
		hub = parsed
	}

	var status courier.Status
	if params.Status != nil {
		parsed, err := courier.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err, "Invalid status")
		}
		status = parsed
	}

	query, err := queries.NewGetCouriersQuery(hub, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid couriers query")
	}

	couriers, err := s.queries.GetCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve couriers")
	}

	response := make([]api.Courier, 0, len(couriers))
	for _, c := range couriers {
		response = append(response, toCourier(c))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var newCourier api.NewCourier
	if err := ctx.Bind(&newCourier); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicle, err := courier.ParseVehicle(newCourier.VehicleType)
	if err != nil {
		return s.fail(ctx, err, "Invalid courier data")
	}

	var hub kernel.Hub
	if newCourier.Hub != nil && *newCourier.Hub != "" {
		hub, err = kernel.ParseHub(*newCourier.Hub)
		if err != nil {
			return s.fail(ctx, err, "Invalid courier data")
		}
	}

	var phone string
	if newCourier.Phone != nil {
		phone = *newCourier.Phone
	}

	courierID, err := withFreshID(
		func() string { return kernel.NewCourierID(s.rnd) },
		func(id string) error {
			cmd, cmdErr := commands.NewCreateCourierCommand(id, newCourier.Name, phone, vehicle, hub)
			if cmdErr != nil {
				return cmdErr
			}
			return s.commands.CreateCourier.Handle(ctx.Request().Context(), cmd)
		},
	)
	if err != nil {
		return s.fail(ctx, err, "Failed to create courier")
	}

	return ctx.JSON(http.StatusCreated, api.Created{Id: courierID})
}

// ToggleAvailability handles POST /api/v1/couriers/{courierId}/availability.
func (s *Server) ToggleAvailability(ctx echo.Context, courierID string) error {
	var body api.ToggleAvailabilityJSONBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewToggleAvailabilityCommand(courierID, body.Online)
	if err != nil {
		return s.fail(ctx, err, "Invalid availability change")
	}

	if err = s.commands.ToggleAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to change availability")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRiderTask handles GET /api/v1/couriers/{courierId}/task.
func (s *Server) GetRiderTask(ctx echo.Context, courierID string) error {
	query, err := queries.NewGetRiderTaskQuery(courierID)
	if err != nil {
		return s.fail(ctx, err, "Invalid courier id")
	}

	task, err := s.queries.GetRiderTask.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve rider task")
	}

	response := api.RiderTask{Rider: toCourier(task.Rider)}
	if task.Task != nil {
		o := toOrder(*task.Task)
		response.Task = &o
	}
	if task.NextStatus.Validate() == nil {
		response.NextStatus = optional(task.NextStatus.String())
	}

	return ctx.JSON(http.StatusOK, response)
}
