package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-service/pkg/logger"
	"sales-service/prometheus"
)

// ReloadCatalog rebuilds the catalog snapshot from the configured
// document and swaps it in atomically. In-flight queries keep the
// previous snapshot; on error the previous snapshot stays in place.
func (h *Handler) ReloadCatalog(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Reloading catalog", zap.String("path", h.CatalogPath))

	if err := h.Engine.Load(h.CatalogPath); err != nil {
		log.Error("Catalog reload failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Catalog reload failed",
		})
	}

	prometheus.RecordCatalogReload()
	log.Info("Catalog reloaded")
	return c.JSON(http.StatusOK, echo.Map{
		"status": "reloaded",
	})
}
