package repository

import (
	"context"

	"tracker/internal/domain/entity"
)

// TaskRepository persists the ad-hoc daily tasks.
type TaskRepository interface {
	// Create stores a new task; completion defaults to false.
	Create(ctx context.Context, task *entity.DailyTask) error

	// ListByDate returns the tasks of one calendar date ordered by insertion id.
	ListByDate(ctx context.Context, date string) ([]*entity.DailyTask, error)

	// SetCompleted flips the completion flag. Unknown ids are a no-op.
	SetCompleted(ctx context.Context, id int64, completed bool) error

	// Delete removes a task. Deleting a nonexistent id is a no-op, not an error.
	Delete(ctx context.Context, id int64) error

	// EfficiencyHistory aggregates completion percentages per date, newest
	// first. Only dates with at least one task produce a row.
	EfficiencyHistory(ctx context.Context) ([]*entity.EfficiencyDay, error)
}
