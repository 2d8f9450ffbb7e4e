package supervision

import (
	"context"
	"time"
)

// ProcessSnapshot is a read-only view of one supervised process, taken at
// roster-fetch time. Snapshots are fetched fresh on every tick and are
// never cached across ticks.
type ProcessSnapshot struct {
	Name       string
	Group      string
	Running    bool
	StartedAt  time.Time
	ObservedAt time.Time
	MemoryRSS  int64 // resident memory in bytes
}

// ID returns the identifier the supervision service expects for process
// operations: "group:name", or just the name when the group matches it.
func (s ProcessSnapshot) ID() string {
	if s.Group == "" || s.Group == s.Name {
		return s.Name
	}
	return s.Group + ":" + s.Name
}

// Uptime returns how long the process had been running at observation time.
func (s ProcessSnapshot) Uptime() time.Duration {
	return s.ObservedAt.Sub(s.StartedAt)
}

// Supervisor is the consumed boundary of the external supervision service.
type Supervisor interface {
	ListAllProcesses(ctx context.Context) ([]ProcessSnapshot, error)
	RestartProcess(ctx context.Context, id string) (bool, error)
}
