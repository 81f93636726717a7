package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dashboard/backend/internal/notify"
)

// NotificationSource is the read side of the notification buffer.
type NotificationSource interface {
	Recent(limit int) []notify.Notification
}

type NotificationHandler struct {
	source NotificationSource
}

type notificationResponse struct {
	ID        string `json:"id"`
	Level     string `json:"level"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

const maxNotificationLimit = 100

func NewNotificationHandler(source NotificationSource) *NotificationHandler {
	return &NotificationHandler{source: source}
}

func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.List)
}

// List godoc
// @Summary      Recent notifications, newest first
// @Tags         notifications
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of notifications (1-100)"
// @Success      200    {array}   notificationResponse
// @Failure      400    {object}  errorResponse
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
		limit = min(n, maxNotificationLimit)
	}

	items := h.source.Recent(limit)
	response := make([]notificationResponse, 0, len(items))
	for _, n := range items {
		response = append(response, notificationResponse{
			ID:        itoa(n.ID),
			Level:     string(n.Level),
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, response)
}
