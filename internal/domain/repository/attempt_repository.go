package repository

import (
	"context"

	"tracker/internal/domain/entity"
)

// AttemptRepository is the append-only log of authentication attempts.
type AttemptRepository interface {
	// Append records one attempt. Rows are never mutated afterwards.
	Append(ctx context.Context, attempt *entity.LoginAttempt) error

	// ListRecent returns the newest attempts joined to the owning device's
	// display name. The join is a left join: attempts referencing a deleted
	// device come back with a nil name.
	ListRecent(ctx context.Context, limit int) ([]*entity.LoginAttemptRecord, error)

	// DeleteByDeviceID removes every attempt for a device (bulk device deletion).
	DeleteByDeviceID(ctx context.Context, deviceID string) error
}
