// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup/shutdown work such as DB pings
// and HTTP server drain.
const DefaultTimeout = 10 * time.Second
