// Package lifecycle holds shared timing constants for component startup
// and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of long-lived
// components such as servers and storage clients.
const DefaultTimeout = 10 * time.Second
