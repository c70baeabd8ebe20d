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

// attemptRepository implements the repository.AttemptRepository interface.
type attemptRepository struct {
	db *gorm.DB
}

// NewAttemptRepository is the constructor for attemptRepository.
func NewAttemptRepository(db *gorm.DB) repository.AttemptRepository {
	return &attemptRepository{
		db: db,
	}
}

// Append records one attempt. Rows are never mutated afterwards.
func (repo *attemptRepository) Append(ctx context.Context, attempt *entity.LoginAttempt) error {
	attemptM := &model.LoginAttemptModel{
		DeviceID:  attempt.DeviceID,
		IPAddress: attempt.IPAddress,
		Timestamp: attempt.Timestamp,
		Status:    attempt.Status,
		UserAgent: attempt.UserAgent,
	}

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record login attempt")
	}

	attempt.ID = attemptM.ID

	return nil
}

// ListRecent returns the newest attempts joined to the owning device's display
// name. The left join keeps attempts whose device has since been deleted;
// those rows come back with a nil name.
func (repo *attemptRepository) ListRecent(ctx context.Context, limit int) ([]*entity.LoginAttemptRecord, error) {
	var records []*entity.LoginAttemptRecord

	err := repo.db.WithContext(ctx).Raw(`
		SELECT la.timestamp, la.device_id, la.ip_address, la.status, ad.device_name
		FROM login_attempts la
		LEFT JOIN authorized_devices ad ON la.device_id = ad.device_id
		ORDER BY la.timestamp DESC, la.id DESC
		LIMIT ?`, limit).Scan(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list login attempts")
	}

	return records, nil
}

// DeleteByDeviceID removes every attempt for a device.
func (repo *attemptRepository) DeleteByDeviceID(ctx context.Context, deviceID string) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.LoginAttemptModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete login attempts")
	}

	return nil
}
