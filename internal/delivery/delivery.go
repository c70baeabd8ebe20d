// Package delivery defines the interface every transport implementation
// satisfies, decoupling the app bootstrap from the concrete server.
package delivery

import "context"

// Delivery is a running transport surface (HTTP today).
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
