package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	deliverycontext "boutique/internal/delivery/context"
)

// SessionMiddleware resolves the shopping session for a request. The session
// id travels in the X-Session-Id header; a request without one gets a fresh
// id, echoed back so the client can persist it. No lookup happens here: the
// session state itself is created lazily by the session repository.
type SessionMiddleware struct {
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		logger: logger,
	}
}

// Resolve extracts or issues the shopping session id.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Request().Header.Get(deliverycontext.HeaderXSessionID)
		if sessionID == "" {
			sessionID = uuid.New().String()
			m.logger.Debug("Issued shopping session", slog.String("session_id", sessionID))
		}

		deliverycontext.SetSessionID(c, sessionID)
		c.Response().Header().Set(deliverycontext.HeaderXSessionID, sessionID)

		return next(c)
	}
}
