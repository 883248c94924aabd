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

// AuthHandler holds dependencies for login and logout.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Logout handles the logout request for an authenticated principal.
func (h *AuthHandler) Logout(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "Not logged in")
	}

	if err := h.uc.Logout(c.Request().Context(), principal.Username); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}
