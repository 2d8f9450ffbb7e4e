package watchdog

import (
	"time"

	"github.com/core-tools/hsu-memwatch/pkg/supervision"
)

// IsRestartEligible reports whether a process is a restart candidate.
//
// A process that is not running has no meaningful memory figure and is
// never eligible. A process younger than minUptime is still warming up and
// is protected from restart storms; the boundary is inclusive, so a
// process whose uptime equals minUptime is eligible.
func IsRestartEligible(snapshot supervision.ProcessSnapshot, minUptime time.Duration) bool {
	if !snapshot.Running {
		return false
	}
	if snapshot.Uptime() < minUptime {
		return false
	}
	return true
}
