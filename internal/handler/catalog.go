package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tumbletown/signup-api/internal/model"
	"github.com/tumbletown/signup-api/internal/repository"
)

// CatalogStore abstracts catalog reads for the handler.  It is satisfied
// by *repository.CatalogRepo.
type CatalogStore interface {
	Get(ctx context.Context, kind model.CatalogKind) (*repository.CatalogView, error)
}

// CatalogHandler serves the aggregate class listing.  Both catalog
// singletons are returned with signee lists collapsed to counts; raw
// signee records never appear in this view.
type CatalogHandler struct {
	Catalogs CatalogStore
}

// NewCatalogHandler constructs a CatalogHandler.  The store must be
// non-nil.
func NewCatalogHandler(catalogs CatalogStore) *CatalogHandler {
	if catalogs == nil {
		panic("nil store passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalogs: catalogs}
}

// GetClasses handles GET /classes.  It returns the signups catalog and
// the upcoming catalog together.  When either singleton is missing the
// backend has not been seeded and a 404 is returned; any other failure
// yields a generic 500.
func (h *CatalogHandler) GetClasses(c echo.Context) error {
	ctx := c.Request().Context()
	signups, err := h.Catalogs.Get(ctx, model.KindSignups)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No class data found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	upcoming, err := h.Catalogs.Get(ctx, model.KindUpcoming)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No class data found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"signups":  signups,
		"upcoming": upcoming,
	})
}
