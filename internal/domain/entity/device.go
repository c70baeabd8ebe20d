// Package entity contains the core business objects of the project.
package entity

import "time"

// AuthorizedDevice is a device trust record keyed by a client-held random
// identifier. It enables password-free re-entry while the session token is
// still inside its expiry window.
type AuthorizedDevice struct {
	ID           int64      `json:"id"`
	DeviceID     string     `json:"device_id"`   // Opaque identifier generated for the client.
	DeviceName   string     `json:"device_name"` // Human-friendly label, derived from client info at first sight.
	IPAddress    string     `json:"ip_address"`  // Last-seen network address.
	UserAgent    string     `json:"user_agent"`  // Last-seen client descriptor.
	FirstLogin   time.Time  `json:"first_login"`
	LastLogin    time.Time  `json:"last_login"`
	IsApproved   bool       `json:"is_approved"`
	SessionToken string     `json:"-"` // Opaque, compared for equality only.
	TokenExpiry  *time.Time `json:"token_expiry"`
}

// SessionActive reports whether the stored token is still inside its window.
func (d *AuthorizedDevice) SessionActive(now time.Time) bool {
	return d.TokenExpiry != nil && d.TokenExpiry.After(now)
}

// DeviceOverview is the admin-facing view of a trust record with the derived
// session status.
type DeviceOverview struct {
	AuthorizedDevice
	SessionStatus string `json:"session_status"` // "Active" or "Expired".
}
