// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"strings"

	"tracker/config"
	"tracker/internal/domain/service"
	"tracker/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// fallbackPassword is the historical development password. It is only reachable
// when auth.allowInsecureFallback is set; without that flag an empty hash is a
// startup failure.
const fallbackPassword = "jee2025"

// sha256Verifier compares candidates against a sha256 hex digest. This is the
// legacy scheme kept for compatibility with previously issued hashes.
type sha256Verifier struct {
	referenceHash string
}

// Verify hashes the candidate and compares in constant time.
func (v *sha256Verifier) Verify(candidate string) bool {
	sum := sha256.Sum256([]byte(candidate))
	digest := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(v.referenceHash))) == 1
}

// bcryptVerifier compares candidates against a bcrypt hash.
// bcrypt embeds its own salt, so the whole hash is the reference.
type bcryptVerifier struct {
	referenceHash string
}

// Verify compares a plaintext candidate with the bcrypt hash.
func (v *bcryptVerifier) Verify(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(v.referenceHash), []byte(candidate))
	// err is nil if the password and hash match.
	return err == nil
}

// NewPasswordVerifier builds the verifier for the configured reference hash.
// A "$2" prefix selects bcrypt; anything else is treated as a sha256 hex
// digest. No configured hash is fatal unless the insecure fallback is
// explicitly enabled.
func NewPasswordVerifier(cfg *config.Config, logger *slog.Logger) (service.PasswordVerifier, error) {
	hash := strings.TrimSpace(cfg.Auth.PasswordHash)

	if hash == "" {
		if !cfg.Auth.AllowInsecureFallback {
			return nil, errors.New("auth.passwordHash is not configured; set it or enable auth.allowInsecureFallback for local development")
		}

		logger.Warn("no password hash configured, using built-in development password; do not deploy this configuration")
		sum := sha256.Sum256([]byte(fallbackPassword))

		return &sha256Verifier{referenceHash: hex.EncodeToString(sum[:])}, nil
	}

	if strings.HasPrefix(hash, "$2") {
		return &bcryptVerifier{referenceHash: hash}, nil
	}

	if _, err := hex.DecodeString(hash); err != nil || len(hash) != sha256.Size*2 {
		return nil, errors.Errorf("auth.passwordHash is neither a bcrypt hash nor a sha256 hex digest")
	}

	return &sha256Verifier{referenceHash: hash}, nil
}
