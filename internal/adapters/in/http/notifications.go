package http

import (
	"net/http"

	"speedial/internal/adapters/in/http/api"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GetNotifications handles GET /api/v1/notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	list := s.notifications.List()

	response := make([]api.Notification, 0, len(list))
	for _, n := range list {
		response = append(response, api.Notification{
			Id:        n.ID(),
			Message:   n.Message(),
			Type:      string(n.Severity()),
			Timestamp: n.CreatedAt(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// DismissNotification handles DELETE /api/v1/notifications/{notificationId}.
func (s *Server) DismissNotification(ctx echo.Context, notificationID string) error {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return badRequest(ctx, "Invalid notification id")
	}

	if !s.notifications.Dismiss(id) {
		return ctx.JSON(http.StatusNotFound, api.Error{
			Code:    http.StatusNotFound,
			Message: "Notification not found",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}
