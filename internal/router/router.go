// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tumbletown/signup-api/internal/handler"
)

// RegisterRoutes wires every endpoint of the service.  All routes are
// public; there is no authentication surface.
//
// The rate-limit middleware guards only the signup route (3 attempts per
// window per client by default) and the cache middleware sits only on
// the events listing; the class catalog is served fresh on every
// request so signee counts always match the stored state.
func RegisterRoutes(e *echo.Echo, catalogs *handler.CatalogHandler, events *handler.EventHandler, signups *handler.SignupHandler, rateLimit, cache echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Read-only projections of class and event data.
	e.GET("/classes", catalogs.GetClasses)
	e.GET("/events", events.GetEvents, cache)

	// The single mutating endpoint.
	e.POST("/class-signup", signups.Signup, rateLimit)
}
