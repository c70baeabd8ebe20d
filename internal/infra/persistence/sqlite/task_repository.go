package sqlite

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create stores a new task; completion defaults to false.
func (repo *taskRepository) Create(ctx context.Context, task *entity.DailyTask) error {
	taskM := &model.DailyTaskModel{
		TaskName:    task.TaskName,
		Date:        task.Date,
		IsCompleted: task.IsCompleted,
	}

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID

	return nil
}

// ListByDate returns the tasks of one calendar date ordered by insertion id.
func (repo *taskRepository) ListByDate(ctx context.Context, date string) ([]*entity.DailyTask, error) {
	var taskModels []*model.DailyTaskModel

	if err := repo.db.WithContext(ctx).
		Where("date = ?", date).
		Order("id ASC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by date")
	}

	tasks := make([]*entity.DailyTask, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, &entity.DailyTask{
			ID:          taskM.ID,
			TaskName:    taskM.TaskName,
			Date:        taskM.Date,
			IsCompleted: taskM.IsCompleted,
		})
	}

	return tasks, nil
}

// SetCompleted flips the completion flag. Unknown ids affect zero rows and are
// not reported as an error.
func (repo *taskRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.DailyTaskModel{}).
		Where("id = ?", id).
		Update("is_completed", completed).Error; err != nil {
		return errors.Wrap(err, "failed to update task completion")
	}

	return nil
}

// Delete removes a task. Deleting a nonexistent id is a no-op, not an error.
func (repo *taskRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DailyTaskModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete task")
	}

	return nil
}

// EfficiencyHistory aggregates completion percentages per date, newest first.
// The percentage is rounded to one decimal in SQL so every consumer sees the
// same figure.
func (repo *taskRepository) EfficiencyHistory(ctx context.Context) ([]*entity.EfficiencyDay, error) {
	var days []*entity.EfficiencyDay

	err := repo.db.WithContext(ctx).Raw(`
		SELECT
			date,
			COUNT(*) AS total,
			SUM(is_completed) AS completed,
			ROUND(CAST(SUM(is_completed) AS FLOAT) / COUNT(*) * 100, 1) AS percent
		FROM daily_tasks
		GROUP BY date
		ORDER BY date DESC`).Scan(&days).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate efficiency history")
	}

	return days, nil
}
