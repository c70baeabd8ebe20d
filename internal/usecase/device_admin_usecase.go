package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// DeviceAdminUsecase defines the device management panel use cases.
type DeviceAdminUsecase interface {
	// ListDevices returns every trust record with its derived session status.
	// Read failures degrade to an empty list rather than breaking the panel.
	ListDevices(ctx context.Context) []*entity.DeviceOverview

	// LoginHistory returns the most recent authentication attempts, newest
	// first, with the same degrade-to-empty behavior as ListDevices. The limit
	// is clamped to the panel's maximum; non-positive values take the default.
	LoginHistory(ctx context.Context, limit int) []*entity.LoginAttemptRecord

	// ApproveDevice marks a device as approved.
	ApproveDevice(ctx context.Context, deviceID string) error

	// RevokeDevice withdraws approval without deleting history.
	RevokeDevice(ctx context.Context, deviceID string) error

	// DeleteDevice removes the trust record and its login attempts together.
	DeleteDevice(ctx context.Context, deviceID string) error
}
