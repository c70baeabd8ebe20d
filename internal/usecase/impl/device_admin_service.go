package impl

import (
	"context"
	"log/slog"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
)

// loginHistoryLimit caps the admin login history view.
const loginHistoryLimit = 50

// Derived session status labels shown in the device panel.
const (
	sessionStatusActive  = "Active"
	sessionStatusExpired = "Expired"
)

type deviceAdminService struct {
	txManager   repository.TransactionManager
	deviceRepo  repository.DeviceRepository
	attemptRepo repository.AttemptRepository
	logger      *slog.Logger
}

// NewDeviceAdminService creates a new device admin service instance.
func NewDeviceAdminService(
	txManager repository.TransactionManager,
	deviceRepo repository.DeviceRepository,
	attemptRepo repository.AttemptRepository,
	logger *slog.Logger,
) usecase.DeviceAdminUsecase {
	return &deviceAdminService{
		txManager:   txManager,
		deviceRepo:  deviceRepo,
		attemptRepo: attemptRepo,
		logger:      logger,
	}
}

// ListDevices returns every trust record with its derived session status.
// The panel is informational, so read failures degrade to an empty list.
func (s *deviceAdminService) ListDevices(ctx context.Context) []*entity.DeviceOverview {
	devices, err := s.deviceRepo.List(ctx)
	if err != nil {
		s.logger.Warn("failed to list devices", slog.Any("error", err))

		return []*entity.DeviceOverview{}
	}

	now := time.Now()
	overviews := make([]*entity.DeviceOverview, 0, len(devices))
	for _, device := range devices {
		status := sessionStatusExpired
		if device.SessionActive(now) {
			status = sessionStatusActive
		}

		overviews = append(overviews, &entity.DeviceOverview{
			AuthorizedDevice: *device,
			SessionStatus:    status,
		})
	}

	return overviews
}

// LoginHistory returns the most recent authentication attempts, newest first.
func (s *deviceAdminService) LoginHistory(ctx context.Context, limit int) []*entity.LoginAttemptRecord {
	if limit <= 0 || limit > loginHistoryLimit {
		limit = loginHistoryLimit
	}

	records, err := s.attemptRepo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Warn("failed to list login attempts", slog.Any("error", err))

		return []*entity.LoginAttemptRecord{}
	}

	return records
}

// ApproveDevice marks a device as approved.
func (s *deviceAdminService) ApproveDevice(ctx context.Context, deviceID string) error {
	return s.setApproval(ctx, deviceID, true)
}

// RevokeDevice withdraws approval without deleting history. The device's
// stored token keeps ticking toward expiry but no longer auto-logs-in.
func (s *deviceAdminService) RevokeDevice(ctx context.Context, deviceID string) error {
	return s.setApproval(ctx, deviceID, false)
}

func (s *deviceAdminService) setApproval(ctx context.Context, deviceID string, approved bool) error {
	if err := s.deviceRepo.SetApproved(ctx, deviceID, approved); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to update device approval")
	}

	return nil
}

// DeleteDevice removes the trust record and its login attempts in one
// transaction so the history never outlives the device half-deleted.
func (s *deviceAdminService) DeleteDevice(ctx context.Context, deviceID string) error {
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.DeviceRepo().Delete(ctx, deviceID); err != nil {
			return err
		}

		return repos.AttemptRepo().DeleteByDeviceID(ctx, deviceID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	s.logger.Info("deleted device", slog.String("deviceID", deviceID))

	return nil
}
