package handler

import (
	"log/slog"
	"net/http"

	"tracker/internal/delivery/http/response"
	"tracker/internal/domain/entity"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SyllabusHandler holds dependencies for the curriculum checklist handlers.
type SyllabusHandler struct {
	uc     usecase.SyllabusUsecase
	logger *slog.Logger
}

// NewSyllabusHandler is the constructor for SyllabusHandler, injected by Fx.
func NewSyllabusHandler(uc usecase.SyllabusUsecase, logger *slog.Logger) *SyllabusHandler {
	return &SyllabusHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Not Started' 'In Progress' 'Completed'"`
}

// ListSyllabus returns the whole checklist in catalog order.
func (h *SyllabusHandler) ListSyllabus(c echo.Context) error {
	items, err := h.uc.ListSyllabus(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// UpdateStatus moves one chapter to a new progress state.
func (h *SyllabusHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid syllabus item id")
	}

	var input updateStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), id, entity.SyllabusStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated")
}
