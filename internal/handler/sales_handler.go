package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-service/internal/engine"
	"sales-service/pkg/logger"
)

// Search handles the search/recommend contract consumed by the sales
// assistant's tool layer.
func (h *Handler) Search(c echo.Context) error {
	log := logger.FromContext(c)

	var req engine.SearchRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid search request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	log.Info("Search request",
		zap.String("query", req.Query),
		zap.String("sku", req.SKU),
		zap.String("variant_sku", req.VariantSKU))

	resp, err := h.Engine.Search(req)
	if err != nil {
		if handled, herr := notReady(c, err); handled {
			return herr
		}
		log.Error("Search failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Search failed",
		})
	}

	log.Info("Search completed",
		zap.Int("result_count", len(resp.Results)),
		zap.Bool("has_quote", resp.Quote != nil))
	return c.JSON(http.StatusOK, resp)
}

// Assembly handles assembly/build-cost requests.
func (h *Handler) Assembly(c echo.Context) error {
	log := logger.FromContext(c)

	var req engine.AssemblyRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid assembly request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	log.Info("Assembly request",
		zap.String("build_type", req.BuildType),
		zap.String("desktop_build_id", req.DesktopBuildID))

	resp, err := h.Engine.BuildCost(req)
	if err != nil {
		if handled, herr := notReady(c, err); handled {
			return herr
		}
		log.Error("Assembly costing failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Assembly costing failed",
		})
	}

	log.Info("Assembly costed",
		zap.Int("component_count", len(resp.Components)),
		zap.Int64("total_cost", resp.TotalCost))
	return c.JSON(http.StatusOK, resp)
}
