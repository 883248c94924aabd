// Package handler contains the HTTP handlers for the storefront.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"boutique/internal/delivery/http/response"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/usecase"
)

// CatalogHandler holds dependencies for the public browsing endpoints.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles GET /products with optional q and category filters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var filter usecase.ProductFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "Invalid product filter")
	}

	products, err := h.uc.ListProducts(c.Request().Context(), &filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListCategories handles GET /products/categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// parseID parses the :id path parameter shared by product-scoped routes.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("product id must be an integer")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
