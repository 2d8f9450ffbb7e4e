package watchdog

import (
	"strings"
	"time"
)

// TickEvent is a periodic signal delivered by the external event source.
type TickEvent struct {
	Name string
	Time time.Time
}

// IsTick reports whether the event name indicates a periodic tick.
// Supervision-service tick events are named TICK_5, TICK_60, TICK_3600.
func (e TickEvent) IsTick() bool {
	return strings.Contains(e.Name, "TICK")
}
