// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"tracker/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device trust records.
// There is at most one record per device identifier.
type DeviceRepository interface {
	// FindByDeviceID retrieves a trust record by its client-held identifier.
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.AuthorizedDevice, error)

	// Create persists a brand-new trust record.
	Create(ctx context.Context, device *entity.AuthorizedDevice) error

	// RefreshSession updates token, expiry, client info and last_login on an
	// existing record. The approval flag is deliberately not touched here.
	RefreshSession(ctx context.Context, deviceID, token string, expiry time.Time, ipAddress, userAgent string) error

	// SetApproved flips the approval flag for a device.
	SetApproved(ctx context.Context, deviceID string, approved bool) error

	// ClearSession drops the stored token and expiry, forcing a fresh login.
	ClearSession(ctx context.Context, deviceID string) error

	// List returns all trust records, most recently used first.
	List(ctx context.Context) ([]*entity.AuthorizedDevice, error)

	// Delete removes the trust record. Attempt rows are removed separately by
	// the caller inside the same transaction.
	Delete(ctx context.Context, deviceID string) error
}
