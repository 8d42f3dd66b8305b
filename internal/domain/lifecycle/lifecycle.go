// Package lifecycle holds shared start/stop settings for long-lived resources.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single start or stop hook may take.
const DefaultTimeout = 10 * time.Second
