// Package lifecycle holds shared constants for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps (server drain,
// database ping) so a hung dependency cannot stall the process forever.
const DefaultTimeout = 10 * time.Second
