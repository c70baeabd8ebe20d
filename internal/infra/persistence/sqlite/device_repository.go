package sqlite

import (
	"context"
	"strings"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindByDeviceID retrieves a trust record by its client-held identifier.
func (repo *deviceRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.AuthorizedDevice, error) {
	var deviceM model.AuthorizedDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by device ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// Create persists a brand-new trust record.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.AuthorizedDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID

	return nil
}

// RefreshSession updates token, expiry, client info and last_login on an
// existing record. The approval flag is deliberately left alone so a revoked
// device stays revoked across re-logins.
func (repo *deviceRepository) RefreshSession(ctx context.Context, deviceID, token string, expiry time.Time, ipAddress, userAgent string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthorizedDeviceModel{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"session_token": token,
			"token_expiry":  expiry,
			"ip_address":    ipAddress,
			"user_agent":    userAgent,
			"last_login":    time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to refresh session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// SetApproved flips the approval flag for a device.
func (repo *deviceRepository) SetApproved(ctx context.Context, deviceID string, approved bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthorizedDeviceModel{}).
		Where("device_id = ?", deviceID).
		Update("is_approved", approved)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update approval flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// ClearSession drops the stored token and expiry, forcing a fresh login.
func (repo *deviceRepository) ClearSession(ctx context.Context, deviceID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthorizedDeviceModel{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"session_token": "",
			"token_expiry":  nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// List returns all trust records, most recently used first.
func (repo *deviceRepository) List(ctx context.Context) ([]*entity.AuthorizedDevice, error) {
	var deviceModels []*model.AuthorizedDeviceModel

	if err := repo.db.WithContext(ctx).
		Order("last_login DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.AuthorizedDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// Delete removes the trust record. Attempt rows are removed separately by the
// caller inside the same transaction.
func (repo *deviceRepository) Delete(ctx context.Context, deviceID string) error {
	result := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.AuthorizedDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// isUniqueConstraintViolation reports whether the error came from the SQLite
// UNIQUE constraint on device_id.
func isUniqueConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM AuthorizedDeviceModel to a domain entity.
func toDeviceDomain(data *model.AuthorizedDeviceModel) *entity.AuthorizedDevice {
	if data == nil {
		return nil
	}

	return &entity.AuthorizedDevice{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		DeviceName:   data.DeviceName,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		FirstLogin:   data.FirstLogin,
		LastLogin:    data.LastLogin,
		IsApproved:   data.IsApproved,
		SessionToken: data.SessionToken,
		TokenExpiry:  data.TokenExpiry,
	}
}

// fromDeviceDomain converts a domain entity to a GORM AuthorizedDeviceModel.
func fromDeviceDomain(data *entity.AuthorizedDevice) *model.AuthorizedDeviceModel {
	if data == nil {
		return nil
	}

	return &model.AuthorizedDeviceModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		DeviceName:   data.DeviceName,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		FirstLogin:   data.FirstLogin,
		LastLogin:    data.LastLogin,
		IsApproved:   data.IsApproved,
		SessionToken: data.SessionToken,
		TokenExpiry:  data.TokenExpiry,
	}
}
