package impl

import (
	"context"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(env *testEnv) usecase.DeviceAdminUsecase {
	return NewDeviceAdminService(env.txManager, env.deviceRepo, env.attemptRepo, env.logger)
}

func trustDevice(t *testing.T, env *testEnv, deviceID string, expiry time.Time) {
	t.Helper()

	require.NoError(t, env.deviceRepo.Create(context.Background(), &entity.AuthorizedDevice{
		DeviceID:     deviceID,
		DeviceName:   "Chrome on Windows (203.0.113.7)",
		IPAddress:    "203.0.113.7",
		UserAgent:    "test-agent",
		FirstLogin:   time.Now(),
		LastLogin:    time.Now(),
		IsApproved:   true,
		SessionToken: "tok-" + deviceID,
		TokenExpiry:  &expiry,
	}))
}

func TestListDevicesDerivesSessionStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := newAdminService(env)

	trustDevice(t, env, "live", time.Now().Add(time.Hour))
	trustDevice(t, env, "stale", time.Now().Add(-time.Hour))

	overviews := svc.ListDevices(context.Background())
	require.Len(t, overviews, 2)

	statuses := make(map[string]string, 2)
	for _, overview := range overviews {
		statuses[overview.DeviceID] = overview.SessionStatus
	}
	assert.Equal(t, "Active", statuses["live"])
	assert.Equal(t, "Expired", statuses["stale"])
}

func TestApproveAndRevokeDevice(t *testing.T) {
	env := newTestEnv(t)
	svc := newAdminService(env)

	trustDevice(t, env, "dev-1", time.Now().Add(time.Hour))

	require.NoError(t, svc.RevokeDevice(context.Background(), "dev-1"))
	device, err := env.deviceRepo.FindByDeviceID(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.False(t, device.IsApproved)

	require.NoError(t, svc.ApproveDevice(context.Background(), "dev-1"))
	device, err = env.deviceRepo.FindByDeviceID(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.True(t, device.IsApproved)

	assert.ErrorIs(t, svc.ApproveDevice(context.Background(), "missing"), domainerrors.ErrDeviceNotFound)
}

func TestDeleteDeviceCascadesAttempts(t *testing.T) {
	env := newTestEnv(t)
	svc := newAdminService(env)

	trustDevice(t, env, "dev-1", time.Now().Add(time.Hour))
	trustDevice(t, env, "dev-2", time.Now().Add(time.Hour))

	for _, deviceID := range []string{"dev-1", "dev-1", "dev-2"} {
		require.NoError(t, env.attemptRepo.Append(context.Background(), &entity.LoginAttempt{
			DeviceID:  deviceID,
			IPAddress: "203.0.113.7",
			Timestamp: time.Now(),
			Status:    entity.OutcomeLoginSuccess,
			UserAgent: "test-agent",
		}))
	}

	require.NoError(t, svc.DeleteDevice(context.Background(), "dev-1"))

	assert.Len(t, svc.ListDevices(context.Background()), 1)

	records := svc.LoginHistory(context.Background(), 0)
	require.Len(t, records, 1)
	assert.Equal(t, "dev-2", records[0].DeviceID)

	assert.ErrorIs(t, svc.DeleteDevice(context.Background(), "dev-1"), domainerrors.ErrDeviceNotFound)
}

func TestLoginHistoryJoinsDeviceName(t *testing.T) {
	env := newTestEnv(t)
	svc := newAdminService(env)

	trustDevice(t, env, "named", time.Now().Add(time.Hour))

	require.NoError(t, env.attemptRepo.Append(context.Background(), &entity.LoginAttempt{
		DeviceID:  "named",
		IPAddress: "203.0.113.7",
		Timestamp: time.Now(),
		Status:    entity.OutcomeLoginSuccess,
		UserAgent: "test-agent",
	}))
	require.NoError(t, env.attemptRepo.Append(context.Background(), &entity.LoginAttempt{
		DeviceID:  "orphan",
		IPAddress: "198.51.100.4",
		Timestamp: time.Now().Add(time.Second),
		Status:    entity.OutcomeLoginFailed,
		UserAgent: "test-agent",
	}))

	records := svc.LoginHistory(context.Background(), 0)
	require.Len(t, records, 2)

	// Newest first; the orphan attempt has no surviving device row.
	assert.Equal(t, "orphan", records[0].DeviceID)
	assert.Nil(t, records[0].DeviceName)
	require.NotNil(t, records[1].DeviceName)
	assert.Equal(t, "Chrome on Windows (203.0.113.7)", *records[1].DeviceName)
}

func TestLoginHistoryHonorsLimit(t *testing.T) {
	env := newTestEnv(t)
	svc := newAdminService(env)

	base := time.Now()
	for i := 0; i < loginHistoryLimit+10; i++ {
		require.NoError(t, env.attemptRepo.Append(context.Background(), &entity.LoginAttempt{
			DeviceID:  "dev-1",
			IPAddress: "203.0.113.7",
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Status:    entity.OutcomeAutoLogin,
			UserAgent: "test-agent",
		}))
	}

	records := svc.LoginHistory(context.Background(), 0)
	assert.Len(t, records, loginHistoryLimit)
}
