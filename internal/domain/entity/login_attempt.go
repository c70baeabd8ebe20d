package entity

import "time"

// Login attempt outcome labels. These are persisted verbatim and shown in the
// admin login history, so they must stay stable.
const (
	OutcomeAutoLogin    = "Auto-login Success"
	OutcomeLoginSuccess = "Login Success"
	OutcomeLoginFailed  = "Login Failed - Wrong Password"
)

// LoginAttempt is an immutable, append-only record of one authentication
// attempt. Rows are never mutated; they are only removed when the referenced
// device is deleted.
type LoginAttempt struct {
	ID        int64     `json:"id"`
	DeviceID  string    `json:"device_id"`
	IPAddress string    `json:"ip_address"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	UserAgent string    `json:"user_agent"`
}

// LoginAttemptRecord is a LoginAttempt joined to the owning device's display
// name. DeviceName is nil when the device record no longer exists.
type LoginAttemptRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	DeviceID   string    `json:"device_id"`
	IPAddress  string    `json:"ip_address"`
	Status     string    `json:"status"`
	DeviceName *string   `json:"device_name"`
}
