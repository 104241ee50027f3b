// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a long-running transport surface, such as the HTTP server.
// Serve blocks until the context is cancelled or the transport fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
