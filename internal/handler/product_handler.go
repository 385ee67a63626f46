package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sales-service/pkg/logger"
)

// GetProduct handles retrieving a single product by SKU
func (h *Handler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	sku := c.Param("sku")
	log.Info("Getting product by SKU", zap.String("sku", sku))

	if !h.Engine.Ready() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog not loaded"})
	}

	product, ok := h.Engine.FindBySKU(sku)
	if !ok {
		log.Warn("Product not found", zap.String("sku", sku))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	log.Info("Product retrieved",
		zap.String("sku", sku),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// GetVariant handles retrieving a single RAM/SSD variant by SKU,
// including its parent line when known.
func (h *Handler) GetVariant(c echo.Context) error {
	log := logger.FromContext(c)
	sku := c.Param("sku")
	log.Info("Getting variant by SKU", zap.String("variant_sku", sku))

	if !h.Engine.Ready() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog not loaded"})
	}

	variant, ok := h.Engine.FindByVariantSKU(sku)
	if !ok {
		log.Warn("Variant not found", zap.String("variant_sku", sku))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Variant not found",
		})
	}

	resp := echo.Map{"variant": variant}
	if parent, ok := h.Engine.FindParentProduct(sku); ok {
		resp["parentSku"] = parent.SKU
		resp["parentName"] = parent.Name
	}

	return c.JSON(http.StatusOK, resp)
}

// GetCompatibleBarebones lists the barebones compatible with a CPU SKU.
func (h *Handler) GetCompatibleBarebones(c echo.Context) error {
	log := logger.FromContext(c)
	sku := c.Param("sku")
	log.Info("Listing compatible barebones", zap.String("cpu_sku", sku))

	barebones, err := h.Engine.CompatibleBarebones(sku)
	if err != nil {
		if handled, herr := notReady(c, err); handled {
			return herr
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Lookup failed"})
	}

	log.Info("Compatible barebones retrieved",
		zap.String("cpu_sku", sku),
		zap.Int("count", len(barebones)))
	return c.JSON(http.StatusOK, barebones)
}

// GetDesktopBuild handles retrieving a pre-priced desktop build by id.
func (h *Handler) GetDesktopBuild(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Getting desktop build", zap.String("build_id", id))

	if !h.Engine.Ready() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog not loaded"})
	}

	build, ok := h.Engine.DesktopBuildByID(id)
	if !ok {
		log.Warn("Desktop build not found", zap.String("build_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Desktop build not found",
		})
	}

	return c.JSON(http.StatusOK, build)
}
