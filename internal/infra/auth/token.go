package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"tracker/internal/domain/service"

	"github.com/google/uuid"
)

// uuidTokenSource derives opaque session tokens by hashing a fresh UUID.
// The result is a 64-character hex string with no structure to parse.
type uuidTokenSource struct{}

// NewTokenSource is the constructor for uuidTokenSource.
func NewTokenSource() service.TokenSource {
	return &uuidTokenSource{}
}

// NewToken returns a fresh opaque token.
func (s *uuidTokenSource) NewToken() string {
	sum := sha256.Sum256([]byte(uuid.New().String()))

	return hex.EncodeToString(sum[:])
}
