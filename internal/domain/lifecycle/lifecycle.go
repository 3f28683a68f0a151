// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown steps.
const DefaultTimeout = 10 * time.Second
