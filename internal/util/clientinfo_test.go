package util

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")

	assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.4:1234"

	assert.Equal(t, "192.0.2.4", ClientIP(req))
}

func TestClientUserAgent(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, UnknownValue, ClientUserAgent(req))

	req.Header.Set("User-Agent", "curl/8.0")
	assert.Equal(t, "curl/8.0", ClientUserAgent(req))
}

func TestDeviceDisplayName(t *testing.T) {
	chrome := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	name := DeviceDisplayName(chrome, "203.0.113.7")
	assert.Contains(t, name, "Chrome")
	assert.Contains(t, name, "203.0.113.7")
}

func TestDeviceDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "Device 203.0.113.7", DeviceDisplayName("", "203.0.113.7"))
	assert.Equal(t, "Device "+UnknownValue, DeviceDisplayName(UnknownValue, UnknownValue))

	// Long addresses are truncated to 15 characters, as the legacy labels were.
	assert.Equal(t, "Device 2001:db8:0:1:1:", DeviceDisplayName("", "2001:db8:0:1:1:1:1:1"))
}
