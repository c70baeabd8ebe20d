// Package service defines interfaces for infrastructure services consumed by
// the use case layer.
package service

// PasswordVerifier checks a password candidate against the configured
// reference hash.
type PasswordVerifier interface {
	// Verify returns true when candidate matches the reference hash.
	Verify(candidate string) bool
}
