package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for the device management handlers.
type DeviceHandler struct {
	uc     usecase.DeviceAdminUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceAdminUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListDevices returns every trust record with its derived session status.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ListDevices(c.Request().Context()), "")
}

// LoginHistory returns the most recent authentication attempts.
func (h *DeviceHandler) LoginHistory(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return response.Success(c, http.StatusOK, h.uc.LoginHistory(c.Request().Context(), limit), "")
}

// ApproveDevice marks a device as approved.
func (h *DeviceHandler) ApproveDevice(c echo.Context) error {
	if err := h.uc.ApproveDevice(c.Request().Context(), c.Param("deviceID")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device approved")
}

// RevokeDevice withdraws a device's approval.
func (h *DeviceHandler) RevokeDevice(c echo.Context) error {
	if err := h.uc.RevokeDevice(c.Request().Context(), c.Param("deviceID")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device revoked")
}

// DeleteDevice removes the trust record and its login attempts.
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	if err := h.uc.DeleteDevice(c.Request().Context(), c.Param("deviceID")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deleted")
}
