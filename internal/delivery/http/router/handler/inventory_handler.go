package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/delivery/http/response"
	"boutique/internal/usecase"
)

// InventoryHandler holds dependencies for the manager-only catalog endpoints.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// stageStockRequest is the body of PATCH /inventory/products/:id/stock.
// The value is the raw form text; an empty string is a legal staged value.
type stageStockRequest struct {
	Stock string `json:"stock"`
}

// AddProduct handles POST /inventory/products.
func (h *InventoryHandler) AddProduct(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	product, err := h.uc.AddProduct(c.Request().Context(), deliverycontext.GetPrincipal(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /inventory/products/:id.
func (h *InventoryHandler) UpdateProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), deliverycontext.GetPrincipal(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /inventory/products/:id.
func (h *InventoryHandler) DeleteProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), deliverycontext.GetPrincipal(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// StageStock handles PATCH /inventory/products/:id/stock.
func (h *InventoryHandler) StageStock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input stageStockRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid stock input")
	}

	if err := h.uc.StageStock(c.Request().Context(), deliverycontext.GetPrincipal(c), id, input.Stock); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Stock staged"})
}

// CommitStock handles POST /inventory/products/:id/stock/commit.
func (h *InventoryHandler) CommitStock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	stock, err := h.uc.CommitStock(c.Request().Context(), deliverycontext.GetPrincipal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"stock": stock})
}

// Stats handles GET /inventory/stats.
func (h *InventoryHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Export handles GET /inventory/export with a CSV attachment response.
func (h *InventoryHandler) Export(c echo.Context) error {
	var buf bytes.Buffer
	filename, err := h.uc.ExportCSV(c.Request().Context(), deliverycontext.GetPrincipal(c), &buf)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
