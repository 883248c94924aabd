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

// CheckoutHandler holds dependencies for the checkout flow endpoints.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// Begin handles POST /checkout.
func (h *CheckoutHandler) Begin(c echo.Context) error {
	view, err := h.uc.Begin(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// Get handles GET /checkout.
func (h *CheckoutHandler) Get(c echo.Context) error {
	view, err := h.uc.Get(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SubmitShipping handles POST /checkout/shipping.
func (h *CheckoutHandler) SubmitShipping(c echo.Context) error {
	var input *usecase.ShippingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid shipping input")
	}

	view, err := h.uc.SubmitShipping(c.Request().Context(), deliverycontext.GetSessionID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SubmitPayment handles POST /checkout/payment. The call blocks for the
// settlement window before responding with the receipt.
func (h *CheckoutHandler) SubmitPayment(c echo.Context) error {
	var input *usecase.PaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid payment input")
	}

	view, err := h.uc.SubmitPayment(c.Request().Context(), deliverycontext.GetSessionID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UPIQRCode handles GET /checkout/upi-qr and responds with a PNG image.
func (h *CheckoutHandler) UPIQRCode(c echo.Context) error {
	png, err := h.uc.UPIQRCode(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Abandon handles DELETE /checkout.
func (h *CheckoutHandler) Abandon(c echo.Context) error {
	if err := h.uc.Abandon(c.Request().Context(), deliverycontext.GetSessionID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Checkout abandoned"})
}
