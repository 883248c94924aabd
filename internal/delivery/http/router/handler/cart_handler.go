package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/delivery/http/response"
	"boutique/internal/usecase"
)

// CartHandler holds dependencies for the session cart endpoints.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// addItemRequest is the body of POST /cart.
type addItemRequest struct {
	ProductID int64 `json:"product_id"`
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.uc.GetCart(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem handles POST /cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid cart input")
	}

	view, err := h.uc.AddItem(c.Request().Context(), deliverycontext.GetSessionID(c), input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemoveItem handles DELETE /cart/items/:id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	view, err := h.uc.RemoveItem(c.Request().Context(), deliverycontext.GetSessionID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context(), deliverycontext.GetSessionID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"})
}
