// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/response"
	"tracker/internal/domain/entity"
	"tracker/internal/usecase"
	"tracker/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the device trust handlers.
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

type loginRequest struct {
	Password string `json:"password" validate:"required"`
	// RememberDevice defaults to true, matching the historical login form.
	RememberDevice *bool `json:"remember_device"`
}

// sessionResponse is the wire form of a session. Unlike the entity it carries
// the token, since the client must store it for subsequent requests.
type sessionResponse struct {
	DeviceID      string `json:"device_id"`
	Authenticated bool   `json:"authenticated"`
	SessionToken  string `json:"session_token,omitempty"`
}

func toSessionResponse(session *entity.SessionContext) *sessionResponse {
	return &sessionResponse{
		DeviceID:      session.DeviceID,
		Authenticated: session.Authenticated,
		SessionToken:  session.SessionToken,
	}
}

// EstablishSession resolves the caller's session at page load, minting a
// device identifier for first-time visitors and auto-logging-in trusted ones.
func (h *AuthHandler) EstablishSession(c echo.Context) error {
	deviceID := c.Request().Header.Get(middleware.HeaderDeviceID)
	token := c.Request().Header.Get(middleware.HeaderSessionToken)

	session, err := h.uc.EstablishSession(c.Request().Context(), deviceID, token, clientInfo(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(session), "Session resolved")
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	deviceID := c.Request().Header.Get(middleware.HeaderDeviceID)

	remember := input.RememberDevice == nil || *input.RememberDevice

	session, err := h.uc.Login(c.Request().Context(), deviceID, input.Password, remember, clientInfo(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(session), "Login successful")
}

// Logout clears the device's stored session token.
func (h *AuthHandler) Logout(c echo.Context) error {
	deviceID := c.Request().Header.Get(middleware.HeaderDeviceID)

	if err := h.uc.Logout(c.Request().Context(), deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// clientInfo extracts the request facts the auth flow records.
func clientInfo(c echo.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		IPAddress: util.ClientIP(c.Request()),
		UserAgent: util.ClientUserAgent(c.Request()),
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
