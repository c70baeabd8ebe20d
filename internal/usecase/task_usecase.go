package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// TaskUsecase defines the daily task planner use cases.
type TaskUsecase interface {
	// CreateTask adds a task to one calendar date, initially not completed.
	CreateTask(ctx context.Context, taskName, date string) (*entity.DailyTask, error)

	// ListTasks returns the tasks of one date in insertion order.
	ListTasks(ctx context.Context, date string) ([]*entity.DailyTask, error)

	// SetTaskCompleted flips a task's completion flag.
	SetTaskCompleted(ctx context.Context, id int64, completed bool) error

	// DeleteTask removes a task. Unknown ids are silently ignored.
	DeleteTask(ctx context.Context, id int64) error
}
