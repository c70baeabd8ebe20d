// Package impl contains the implementations of the use case interfaces.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"
	"tracker/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type authService struct {
	txManager   repository.TransactionManager
	deviceRepo  repository.DeviceRepository
	attemptRepo repository.AttemptRepository
	verifier    service.PasswordVerifier
	tokens      service.TokenSource
	trustTTL    time.Duration
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(
	txManager repository.TransactionManager,
	deviceRepo repository.DeviceRepository,
	attemptRepo repository.AttemptRepository,
	verifier service.PasswordVerifier,
	tokens service.TokenSource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:   txManager,
		deviceRepo:  deviceRepo,
		attemptRepo: attemptRepo,
		verifier:    verifier,
		tokens:      tokens,
		trustTTL:    cfg.Auth.TrustTTL,
		sessionTTL:  cfg.Auth.SessionTTL,
		logger:      logger,
	}
}

// EstablishSession resolves the caller's session at page load.
func (s *authService) EstablishSession(ctx context.Context, deviceID, token string, client usecase.ClientInfo) (*entity.SessionContext, error) {
	if deviceID == "" {
		// First visit from this client. Mint a fingerprint for it to hold on
		// to; nothing is persisted until a successful password login.
		return entity.NewSessionContext(uuid.New().String()), nil
	}

	session := entity.NewSessionContext(deviceID)

	trusted, err := s.checkTrust(ctx, deviceID, token)
	if err != nil {
		return nil, err
	}

	if !trusted {
		return session, nil
	}

	session.Authenticated = true
	session.SessionToken = token

	s.recordAttempt(ctx, deviceID, client, entity.OutcomeAutoLogin)
	s.logger.Info("auto-login", slog.String("deviceID", deviceID), slog.String("ip", client.IPAddress))

	return session, nil
}

// Login verifies the password and on success refreshes the device's trust.
func (s *authService) Login(ctx context.Context, deviceID, password string, remember bool, client usecase.ClientInfo) (*entity.SessionContext, error) {
	if deviceID == "" {
		deviceID = uuid.New().String()
	}

	if !s.verifier.Verify(password) {
		s.recordAttempt(ctx, deviceID, client, entity.OutcomeLoginFailed)

		return nil, domainerrors.ErrInvalidPassword
	}

	ttl := s.trustTTL
	if !remember {
		ttl = s.sessionTTL
	}

	token := s.tokens.NewToken()
	expiry := time.Now().Add(ttl)

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return s.saveSession(ctx, repos.DeviceRepo(), deviceID, token, expiry, client)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save device session")
	}

	s.recordAttempt(ctx, deviceID, client, entity.OutcomeLoginSuccess)
	s.logger.Info("login", slog.String("deviceID", deviceID), slog.String("ip", client.IPAddress))

	session := entity.NewSessionContext(deviceID)
	session.Authenticated = true
	session.SessionToken = token

	return session, nil
}

// Logout clears the stored token so the next visit needs the password again.
func (s *authService) Logout(ctx context.Context, deviceID string) error {
	if err := s.deviceRepo.ClearSession(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			// Logging out a device that was never trusted is fine.
			return nil
		}

		return errors.Wrap(err, "failed to clear device session")
	}

	s.logger.Info("logout", slog.String("deviceID", deviceID))

	return nil
}

// Authenticate reports whether deviceID plus token form a live session.
func (s *authService) Authenticate(ctx context.Context, deviceID, token string) (bool, error) {
	return s.checkTrust(ctx, deviceID, token)
}

// checkTrust is the single trust decision: the record must exist, be approved,
// hold a matching non-empty token and still be inside its expiry window.
func (s *authService) checkTrust(ctx context.Context, deviceID, token string) (bool, error) {
	if deviceID == "" || token == "" {
		return false, nil
	}

	device, err := s.deviceRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to look up device trust")
	}

	if !device.SessionActive(time.Now()) || !device.IsApproved {
		return false, nil
	}

	if device.SessionToken == "" {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(device.SessionToken), []byte(token)) == 1, nil
}

// saveSession upserts the trust record. The update branch deliberately leaves
// is_approved alone so a revoked device does not re-approve itself by logging
// in again.
func (s *authService) saveSession(ctx context.Context, devices repository.DeviceRepository, deviceID, token string, expiry time.Time, client usecase.ClientInfo) error {
	_, err := devices.FindByDeviceID(ctx, deviceID)
	if err == nil {
		return devices.RefreshSession(ctx, deviceID, token, expiry, client.IPAddress, client.UserAgent)
	}

	if !errors.Is(err, repository.ErrDeviceNotFound) {
		return err
	}

	now := time.Now()

	return devices.Create(ctx, &entity.AuthorizedDevice{
		DeviceID:     deviceID,
		DeviceName:   util.DeviceDisplayName(client.UserAgent, client.IPAddress),
		IPAddress:    client.IPAddress,
		UserAgent:    client.UserAgent,
		FirstLogin:   now,
		LastLogin:    now,
		IsApproved:   true,
		SessionToken: token,
		TokenExpiry:  &expiry,
	})
}

// recordAttempt appends to the login history. The history is advisory, so a
// write failure is logged and swallowed rather than failing the login itself.
func (s *authService) recordAttempt(ctx context.Context, deviceID string, client usecase.ClientInfo, status string) {
	attempt := &entity.LoginAttempt{
		DeviceID:  deviceID,
		IPAddress: client.IPAddress,
		Timestamp: time.Now(),
		Status:    status,
		UserAgent: client.UserAgent,
	}

	if err := s.attemptRepo.Append(ctx, attempt); err != nil {
		s.logger.Warn("failed to record login attempt",
			slog.String("deviceID", deviceID),
			slog.String("status", status),
			slog.Any("error", err),
		)
	}
}
