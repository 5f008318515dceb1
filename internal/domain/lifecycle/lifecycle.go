// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each lifecycle hook (database ping, server shutdown).
const DefaultTimeout = 10 * time.Second
