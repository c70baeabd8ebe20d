// Package middleware contains the HTTP middlewares for the delivery layer.
package middleware

import (
	"log/slog"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Header and context keys of the device session protocol. The client holds the
// device identifier and the opaque token and presents both on every request.
const (
	HeaderDeviceID     = "X-Device-ID"
	HeaderSessionToken = "X-Session-Token"

	// SessionContextKey is where the middleware stores the resolved session.
	SessionContextKey = "session"
)

// SessionMiddleware authenticates requests by device identifier plus token.
type SessionMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(authUC usecase.AuthUsecase, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		authUC: authUC,
		logger: logger,
	}
}

// Authenticate rejects requests without a live device session. On success the
// resolved session is placed on the echo context for handlers.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deviceID := c.Request().Header.Get(HeaderDeviceID)
		token := c.Request().Header.Get(HeaderSessionToken)

		ok, err := m.authUC.Authenticate(c.Request().Context(), deviceID, token)
		if err != nil {
			m.logger.Error("session check failed",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)

			return domainerrors.ErrInternalError
		}

		if !ok {
			return domainerrors.ErrNotAuthenticated
		}

		session := entity.NewSessionContext(deviceID)
		session.Authenticated = true
		session.SessionToken = token
		c.Set(SessionContextKey, session)

		return next(c)
	}
}

// SessionFrom pulls the session the middleware stored, or nil on public routes.
func SessionFrom(c echo.Context) *entity.SessionContext {
	session, _ := c.Get(SessionContextKey).(*entity.SessionContext)

	return session
}
