// Package lifecycle holds shared lifecycle constants for server components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of delivery components.
const DefaultTimeout = 10 * time.Second
