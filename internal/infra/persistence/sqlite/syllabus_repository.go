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

// syllabusRepository implements the repository.SyllabusRepository interface.
type syllabusRepository struct {
	db *gorm.DB
}

// NewSyllabusRepository is the constructor for syllabusRepository.
func NewSyllabusRepository(db *gorm.DB) repository.SyllabusRepository {
	return &syllabusRepository{
		db: db,
	}
}

// Count returns the number of catalog rows currently stored.
func (repo *syllabusRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SyllabusItemModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count syllabus items")
	}

	return count, nil
}

// Seed inserts the catalog rows in one batch.
func (repo *syllabusRepository) Seed(ctx context.Context, items []*entity.SyllabusItem) error {
	itemModels := make([]*model.SyllabusItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, &model.SyllabusItemModel{
			Phase:   item.Phase,
			Subject: item.Subject,
			Chapter: item.Chapter,
			Status:  string(item.Status),
		})
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed syllabus catalog")
	}

	return nil
}

// List returns the whole catalog ordered by id.
func (repo *syllabusRepository) List(ctx context.Context) ([]*entity.SyllabusItem, error) {
	var itemModels []*model.SyllabusItemModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list syllabus items")
	}

	items := make([]*entity.SyllabusItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, &entity.SyllabusItem{
			ID:      itemM.ID,
			Phase:   itemM.Phase,
			Subject: itemM.Subject,
			Chapter: itemM.Chapter,
			Status:  entity.SyllabusStatus(itemM.Status),
		})
	}

	return items, nil
}

// UpdateStatus sets the status of one chapter.
func (repo *syllabusRepository) UpdateStatus(ctx context.Context, id int64, status entity.SyllabusStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SyllabusItemModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update syllabus status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSyllabusItemNotFound
	}

	return nil
}

// StatsByPhase aggregates total and completed counts per phase label.
func (repo *syllabusRepository) StatsByPhase(ctx context.Context) ([]*entity.PhaseStat, error) {
	var stats []*entity.PhaseStat

	err := repo.db.WithContext(ctx).Raw(`
		SELECT
			phase,
			COUNT(*) AS total,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed
		FROM syllabus_tracker
		GROUP BY phase
		ORDER BY phase`, string(entity.StatusCompleted)).Scan(&stats).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate phase stats")
	}

	return stats, nil
}
