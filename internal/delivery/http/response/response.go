// Package response provides the unified API response envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "boutique/internal/delivery/context"
	domainerrors "boutique/internal/domain/errors"
)

// Success writes the success envelope with request metadata.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Error writes the error envelope with request metadata.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// BindingError is the 400 response for malformed request bodies.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Unauthorized is the 401 response for failed authentication.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

// Forbidden is the 403 response for insufficient permissions.
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}
