package context

import (
	"github.com/labstack/echo/v4"

	"boutique/internal/domain/entity"
)

const (
	// KeySessionID is the key for storing the shopping session id.
	KeySessionID ContextKey = "session_id"

	// KeyPrincipal is the key for storing the authenticated principal.
	KeyPrincipal ContextKey = "principal"
)

// GetSessionID extracts the shopping session id from echo.Context.
// Returns empty string when the session middleware has not run.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(string(KeySessionID)).(string); ok {
		return id
	}

	return ""
}

// SetSessionID stores the shopping session id in echo.Context.
func SetSessionID(c echo.Context, sessionID string) {
	c.Set(string(KeySessionID), sessionID)
}

// GetPrincipal extracts the authenticated principal from echo.Context.
// Returns nil for anonymous requests.
func GetPrincipal(c echo.Context) *entity.Principal {
	if principal, ok := c.Get(string(KeyPrincipal)).(*entity.Principal); ok {
		return principal
	}

	return nil
}

// SetPrincipal stores the authenticated principal in echo.Context.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
}
