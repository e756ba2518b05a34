package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tumbletown/signup-api/internal/repository"
	"github.com/tumbletown/signup-api/internal/service"
)

// Registrar is the registration engine contract.  It is satisfied by
// *service.RegistrationService.
type Registrar interface {
	Register(ctx context.Context, req service.SignupRequest) error
}

// SignupHandler maps signup requests onto the registration engine and
// engine results onto HTTP statuses.  All errors are absorbed here; none
// crash the process.
type SignupHandler struct {
	Registrations Registrar
}

// NewSignupHandler constructs a SignupHandler.  The registrar must be
// non-nil.
func NewSignupHandler(registrations Registrar) *SignupHandler {
	if registrations == nil {
		panic("nil registrar passed to NewSignupHandler")
	}
	return &SignupHandler{Registrations: registrations}
}

// Signup handles POST /class-signup.  Response mapping:
//
//	400 – malformed body, per-field validation errors, duplicate signup,
//	      or full session (the latter two with a specific reason)
//	404 – unknown class or unknown (day, time) session
//	500 – signups catalog missing ("No class data found") or any
//	      unexpected fault (generic message, detail logged server-side)
//	200 – signup stored
func (h *SignupHandler) Signup(c echo.Context) error {
	var req service.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	err := h.Registrations.Register(c.Request().Context(), req)
	if err == nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "Signup successful"})
	}
	if ve, ok := service.IsValidation(err); ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "Validation failed",
			"fields": ve.Fields,
		})
	}
	switch {
	case errors.Is(err, repository.ErrDuplicateSignup):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Already signed up"})
	case errors.Is(err, repository.ErrSessionFull):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Session is full"})
	case errors.Is(err, repository.ErrClassNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Class not found"})
	case errors.Is(err, repository.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Session not found"})
	case errors.Is(err, repository.ErrCatalogNotFound):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No class data found"})
	default:
		c.Logger().Errorf("signup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
}
