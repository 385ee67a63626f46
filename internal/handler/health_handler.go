package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sales-service/pkg/logger"
)

// HealthCheck handles the health check endpoint
func (h *Handler) HealthCheck(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Health check requested")

	// Basic response
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}

	// Check catalog readiness if requested
	if c.QueryParam("check") == "catalog" {
		if !h.Engine.Ready() {
			response["status"] = "error"
			response["catalog_status"] = "not loaded"
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		response["catalog_status"] = "ok"
	}

	return c.JSON(http.StatusOK, response)
}
