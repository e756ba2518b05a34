package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/tumbletown/signup-api/internal/repository"
)

// stubEvents serves a fixed list or error.
type stubEvents struct {
	events []repository.EventView
	err    error
}

func (s stubEvents) List(context.Context) ([]repository.EventView, error) { return s.events, s.err }

func getEvents(t *testing.T, h *EventHandler) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetEvents(e.NewContext(req, rec)))
	return rec
}

// TestGetEvents verifies the 200 payload is a top-level array in store
// order (the repository sorts ascending by date).
func TestGetEvents(t *testing.T) {
	h := NewEventHandler(stubEvents{events: []repository.EventView{
		{ID: 1, Name: "Open House", Date: "2026-09-05T10:00:00Z"},
		{ID: 2, Name: "Fall Showcase", Date: "2026-11-20T18:00:00Z"},
	}})
	rec := getEvents(t, h)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 2)
	require.Equal(t, "Open House", events[0]["name"])
	require.Equal(t, "Fall Showcase", events[1]["name"])
}

// TestGetEventsEmpty verifies an empty array rather than null.
func TestGetEventsEmpty(t *testing.T) {
	h := NewEventHandler(stubEvents{events: []repository.EventView{}})
	rec := getEvents(t, h)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

// TestGetEventsFailure verifies the generic 500 on store failure.
func TestGetEventsFailure(t *testing.T) {
	h := NewEventHandler(stubEvents{err: errors.New("dial tcp: refused")})
	rec := getEvents(t, h)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Server error")
}
