package handler

import (
	"log/slog"
	"net/http"

	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for the read-only report handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// Efficiency returns the per-day completion history with summary and
// projected outcome in one payload.
func (h *ReportHandler) Efficiency(c echo.Context) error {
	report, err := h.uc.Efficiency(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// Phases returns the per-phase syllabus completion counts.
func (h *ReportHandler) Phases(c echo.Context) error {
	stats, err := h.uc.Phases(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
