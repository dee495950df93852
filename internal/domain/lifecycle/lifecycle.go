// Package lifecycle holds process-wide lifecycle bounds.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop steps.
const DefaultTimeout = 10 * time.Second
