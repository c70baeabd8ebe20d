package impl

import (
	"context"
	"strings"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
)

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new task service instance.
func NewTaskService(taskRepo repository.TaskRepository) usecase.TaskUsecase {
	return &taskService{
		taskRepo: taskRepo,
	}
}

// CreateTask adds a task to one calendar date, initially not completed.
func (s *taskService) CreateTask(ctx context.Context, taskName, date string) (*entity.DailyTask, error) {
	taskName = strings.TrimSpace(taskName)
	if taskName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("task name must not be empty")
	}

	task := &entity.DailyTask{
		TaskName:    taskName,
		Date:        date,
		IsCompleted: false,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}

	return task, nil
}

// ListTasks returns the tasks of one date in insertion order.
func (s *taskService) ListTasks(ctx context.Context, date string) ([]*entity.DailyTask, error) {
	tasks, err := s.taskRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// SetTaskCompleted flips a task's completion flag.
func (s *taskService) SetTaskCompleted(ctx context.Context, id int64, completed bool) error {
	if err := s.taskRepo.SetCompleted(ctx, id, completed); err != nil {
		return errors.Wrap(err, "failed to update task completion")
	}

	return nil
}

// DeleteTask removes a task. Unknown ids are silently ignored.
func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete task")
	}

	return nil
}
