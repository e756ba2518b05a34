package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tumbletown/signup-api/internal/repository"
)

// EventStore abstracts event reads for the handler.  It is satisfied by
// *repository.EventRepo.
type EventStore interface {
	List(ctx context.Context) ([]repository.EventView, error)
}

// EventHandler serves the list of gym events.
type EventHandler struct {
	Events EventStore
}

// NewEventHandler constructs an EventHandler.  The store must be non-nil.
func NewEventHandler(events EventStore) *EventHandler {
	if events == nil {
		panic("nil store passed to NewEventHandler")
	}
	return &EventHandler{Events: events}
}

// GetEvents handles GET /events.  It returns every event sorted
// ascending by date; when none exist the response is an empty array.
func (h *EventHandler) GetEvents(c echo.Context) error {
	events, err := h.Events.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	return c.JSON(http.StatusOK, events)
}
