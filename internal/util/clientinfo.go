// Package util contains small helpers shared across layers.
package util

import (
	"fmt"
	"net/http"
	"strings"

	ua "github.com/mileusna/useragent"
)

// UnknownValue is the sentinel used when a client header is absent or
// malformed. Missing client metadata never fails an auth flow.
const UnknownValue = "Unknown"

// ClientIP extracts the caller's network address, preferring the
// X-Forwarded-For chain over the direct remote address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// First hop is the original client.
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			fwd = fwd[:idx]
		}

		return strings.TrimSpace(fwd)
	}

	host := r.RemoteAddr
	if idx := strings.LastIndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}
	if host == "" {
		return UnknownValue
	}

	return host
}

// ClientUserAgent extracts the client descriptor.
func ClientUserAgent(r *http.Request) string {
	agent := r.Header.Get("User-Agent")
	if agent == "" {
		return UnknownValue
	}

	return agent
}

// DeviceDisplayName builds a human-friendly device label. When the user agent
// parses, the label is "Browser on OS (ip)"; otherwise it falls back to the
// historical "Device <ip>" form with the address truncated to 15 characters.
func DeviceDisplayName(userAgent, ipAddress string) string {
	truncated := ipAddress
	if len(truncated) > 15 {
		truncated = truncated[:15]
	}

	if userAgent == "" || userAgent == UnknownValue {
		return fmt.Sprintf("Device %s", truncated)
	}

	parsed := ua.Parse(userAgent)
	if parsed.Name == "" || parsed.OS == "" {
		return fmt.Sprintf("Device %s", truncated)
	}

	return fmt.Sprintf("%s on %s (%s)", parsed.Name, parsed.OS, truncated)
}
