// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// ClientInfo carries the request-derived client facts the auth flow records.
type ClientInfo struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

// AuthUsecase defines the device trust and password gate use cases.
type AuthUsecase interface {
	// EstablishSession resolves the caller's session at page load. An empty
	// deviceID mints a fresh device fingerprint. A known device presenting its
	// stored token inside the expiry window is logged in without a password.
	EstablishSession(ctx context.Context, deviceID, token string, client ClientInfo) (*entity.SessionContext, error)

	// Login verifies the password and, on success, upserts the device trust
	// record with a fresh session token. Failed attempts are recorded.
	// remember selects the long trust window; declining it issues a token that
	// only lasts a browser session's worth of time.
	Login(ctx context.Context, deviceID, password string, remember bool, client ClientInfo) (*entity.SessionContext, error)

	// Logout clears the device's stored session token so the next visit needs
	// the password again.
	Logout(ctx context.Context, deviceID string) error

	// Authenticate reports whether deviceID plus token form a live session.
	// It is the per-request check behind the protected routes.
	Authenticate(ctx context.Context, deviceID, token string) (bool, error)
}
