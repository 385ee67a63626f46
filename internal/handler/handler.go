package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sales-service/internal/engine"
)

// Handler carries the engine dependency for all HTTP handlers. The
// engine is injected at startup; handlers hold no other state.
type Handler struct {
	Engine      *engine.Engine
	CatalogPath string
}

// New returns a handler set over the given engine. catalogPath is the
// document reloaded by the admin reload endpoint.
func New(e *engine.Engine, catalogPath string) *Handler {
	return &Handler{Engine: e, CatalogPath: catalogPath}
}

// notReady maps engine.ErrNotReady to a 503 response.
func notReady(c echo.Context, err error) (bool, error) {
	if errors.Is(err, engine.ErrNotReady) {
		return true, c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "catalog not loaded",
		})
	}
	return false, nil
}
