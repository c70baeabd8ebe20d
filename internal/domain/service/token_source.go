package service

// TokenSource mints opaque session tokens. Tokens are compared for equality
// only and never parsed.
type TokenSource interface {
	// NewToken returns a fresh cryptographically-derived random token.
	NewToken() string
}
