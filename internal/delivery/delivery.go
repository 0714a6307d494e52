// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running entrypoint such as an HTTP server or a
// background worker. Serve blocks until the context is cancelled or the
// delivery fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
