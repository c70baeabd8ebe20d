package entity

// SessionContext is the explicit per-request session state. It replaces any
// ambient session storage: middleware builds it from the request headers and
// handlers read it from the request context.
type SessionContext struct {
	DeviceID      string `json:"device_id"`
	Authenticated bool   `json:"authenticated"`
	SessionToken  string `json:"-"`
}

// NewSessionContext builds an unauthenticated session for a device.
func NewSessionContext(deviceID string) *SessionContext {
	return &SessionContext{DeviceID: deviceID}
}

// Clear resets the session to the unauthenticated state (logout).
func (s *SessionContext) Clear() {
	s.Authenticated = false
	s.SessionToken = ""
}
