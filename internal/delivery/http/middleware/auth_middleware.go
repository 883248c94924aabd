package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/delivery/http/response"
	"boutique/internal/domain/entity"
	"boutique/internal/domain/service"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the principal on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		role := entity.Role(claims.Role)
		if !role.IsValid() {
			return response.Unauthorized(c, "Unknown role in token")
		}

		deliverycontext.SetPrincipal(c, &entity.Principal{
			Username: claims.Username,
			Role:     role,
		})

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the principal's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return response.Forbidden(c, "Permission denied: principal missing")
			}

			if principal.Role != requiredRole {
				return response.Forbidden(c, "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
