package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/tumbletown/signup-api/internal/model"
	"github.com/tumbletown/signup-api/internal/repository"
	"github.com/tumbletown/signup-api/internal/service"
)

// stubRegistrar returns a fixed error for every registration.
type stubRegistrar struct{ err error }

func (s stubRegistrar) Register(context.Context, service.SignupRequest) error { return s.err }

func postSignup(t *testing.T, h *SignupHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/class-signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.Signup(c))
	return rec
}

const validBody = `{
	"className": "Tumbling", "day": "Mon", "time": "4:00pm",
	"signee": {
		"childFirstName": "Ana", "childLastName": "Lee",
		"parentFirstName": "Dana", "parentLastName": "Lee",
		"parentPhoneNumber": "555-123-4567"
	}
}`

// TestSignupStatusMapping verifies that every engine outcome maps to the
// documented status code and message.
func TestSignupStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "duplicate", err: repository.ErrDuplicateSignup, wantStatus: http.StatusBadRequest, wantError: "Already signed up"},
		{name: "full", err: repository.ErrSessionFull, wantStatus: http.StatusBadRequest, wantError: "Session is full"},
		{name: "class missing", err: repository.ErrClassNotFound, wantStatus: http.StatusNotFound, wantError: "Class not found"},
		{name: "session missing", err: repository.ErrSessionNotFound, wantStatus: http.StatusNotFound, wantError: "Session not found"},
		{name: "catalog missing", err: repository.ErrCatalogNotFound, wantStatus: http.StatusInternalServerError, wantError: "No class data found"},
		{name: "store down", err: errors.New("dial tcp: refused"), wantStatus: http.StatusInternalServerError, wantError: "Server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewSignupHandler(stubRegistrar{err: tc.err})
			rec := postSignup(t, h, validBody)
			require.Equal(t, tc.wantStatus, rec.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tc.wantError, resp["error"])
		})
	}
}

// TestSignupSuccessResponse verifies the 200 confirmation payload.
func TestSignupSuccessResponse(t *testing.T) {
	h := NewSignupHandler(stubRegistrar{})
	rec := postSignup(t, h, validBody)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Signup successful", resp["message"])
}

// TestSignupValidationResponse verifies that a validation failure
// carries per-field detail.
func TestSignupValidationResponse(t *testing.T) {
	store := newMemStore(2)
	h := NewSignupHandler(service.NewRegistrationService(store, nil))
	rec := postSignup(t, h, `{"className": "Tumbling", "day": "", "time": "4:00pm", "signee": {}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Validation failed", resp.Error)
	require.Contains(t, resp.Fields, "day")
	require.Contains(t, resp.Fields, "signee.childFirstName")
}

// TestSignupMalformedBody verifies that an unparsable body is rejected
// with 400.
func TestSignupMalformedBody(t *testing.T) {
	h := NewSignupHandler(stubRegistrar{})
	rec := postSignup(t, h, `{"className": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// memStore is an in-memory SignupStore with one class ("Tumbling") and
// one session (Mon 4:00pm) of the given capacity.  It enforces the same
// duplicate and capacity rules as the SQL repository.
type memStore struct {
	maxSignups int
	signees    []model.Signee
}

func newMemStore(maxSignups int) *memStore { return &memStore{maxSignups: maxSignups} }

func (m *memStore) ResolveSession(_ context.Context, className, day, timeOfDay string) (uint64, error) {
	if className != "Tumbling" {
		return 0, repository.ErrClassNotFound
	}
	if day != "Mon" || timeOfDay != "4:00pm" {
		return 0, repository.ErrSessionNotFound
	}
	return 1, nil
}

func (m *memStore) AppendSigneeIfRoomAndUnique(_ context.Context, _ uint64, signee model.Signee) error {
	for _, existing := range m.signees {
		if existing.ChildFirstName == signee.ChildFirstName && existing.ChildLastName == signee.ChildLastName {
			return repository.ErrDuplicateSignup
		}
	}
	if len(m.signees) >= m.maxSignups {
		return repository.ErrSessionFull
	}
	m.signees = append(m.signees, signee)
	return nil
}

func scenarioBody(first, last string) string {
	return `{
		"className": "Tumbling", "day": "Mon", "time": "4:00pm",
		"signee": {
			"childFirstName": "` + first + `", "childLastName": "` + last + `",
			"parentFirstName": "Pat", "parentLastName": "` + last + `",
			"parentPhoneNumber": "555-123-4567"
		}
	}`
}

// TestSignupScenario runs the documented end-to-end sequence against the
// real engine: Ana Lee registers, "ana lee" is rejected as a duplicate,
// Ben Kim fills the session, Cy Fox bounces off the full session, and
// the stored count never exceeds capacity.
func TestSignupScenario(t *testing.T) {
	store := newMemStore(2)
	h := NewSignupHandler(service.NewRegistrationService(store, nil))

	rec := postSignup(t, h, scenarioBody("Ana", "Lee"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.signees, 1)

	rec = postSignup(t, h, scenarioBody("ana", "lee"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Already signed up")
	require.Len(t, store.signees, 1)

	rec = postSignup(t, h, scenarioBody("Ben", "Kim"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.signees, 2)

	rec = postSignup(t, h, scenarioBody("Cy", "Fox"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Session is full")
	require.Len(t, store.signees, 2)

	rec = postSignup(t, h, `{
		"className": "Parkour", "day": "Mon", "time": "4:00pm",
		"signee": {
			"childFirstName": "Ana", "childLastName": "Lee",
			"parentFirstName": "Pat", "parentLastName": "Lee",
			"parentPhoneNumber": "555-123-4567"
		}
	}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Class not found")
}
