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

// TaskHandler holds dependencies for the daily task handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTaskRequest struct {
	TaskName string `json:"task_name" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
}

type setCompletedRequest struct {
	IsCompleted *bool `json:"is_completed" validate:"required"`
}

// CreateTask adds a task to one calendar date.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var input createTaskRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.CreateTask(c.Request().Context(), input.TaskName, input.Date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, task, "Task created")
}

// ListTasks returns the tasks of one date. The date defaults to nothing;
// clients must always say which day they are looking at.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return response.BadRequest(c, "INVALID_INPUT", "date query parameter is required")
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "")
}

// SetCompleted flips a task's completion flag.
func (h *TaskHandler) SetCompleted(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task id")
	}

	var input setCompletedRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completion input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetTaskCompleted(c.Request().Context(), id, *input.IsCompleted); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Task updated")
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task id")
	}

	if err := h.uc.DeleteTask(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Task deleted")
}

// pathID parses the :id path parameter shared by several resources.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
