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

// WishlistHandler holds dependencies for the session wishlist endpoints.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetWishlist handles GET /wishlist.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	view, err := h.uc.GetWishlist(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Toggle handles POST /wishlist/toggle/:id.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Toggle(c.Request().Context(), deliverycontext.GetSessionID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}
