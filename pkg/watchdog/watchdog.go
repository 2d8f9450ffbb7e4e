package watchdog

import (
	"context"
	"fmt"
	"time"

	"github.com/core-tools/hsu-memwatch/pkg/logging"
	"github.com/core-tools/hsu-memwatch/pkg/supervision"
)

// RestartOutcome records the result of one restart attempt. It is built
// once per attempt, handed to the reporter and then discarded.
type RestartOutcome struct {
	ProcessID   string
	Succeeded   bool
	MemoryBytes int64
}

// WatchdogOptions is the immutable configuration of a watchdog instance
type WatchdogOptions struct {
	// Name is an optional instance label used in report subjects
	Name string

	// Thresholds are the program/group/catch-all byte limits
	Thresholds ThresholdConfig

	// MinUptime is how long a process must have been running before it
	// becomes a restart candidate
	MinUptime time.Duration
}

// Watchdog checks the memory usage of all supervised processes on each
// tick and restarts the ones exceeding their resolved threshold. It keeps
// no state between ticks beyond its immutable configuration.
type Watchdog struct {
	options    WatchdogOptions
	supervisor supervision.Supervisor
	reporter   Reporter
	logger     logging.Logger
}

// NewWatchdog creates a watchdog over the given supervision service
func NewWatchdog(options WatchdogOptions, supervisor supervision.Supervisor, reporter Reporter, logger logging.Logger) *Watchdog {
	return &Watchdog{
		options:    options,
		supervisor: supervisor,
		reporter:   reporter,
		logger:     logger,
	}
}

// OnTick processes one event from the event source. Non-tick events are
// ignored without touching the supervision service. OnTick never signals
// failure to its caller: a failed roster fetch skips the tick, and restart
// failures are contained per process, observable only through report
// records and logs.
func (w *Watchdog) OnTick(ctx context.Context, event TickEvent) {
	if !event.IsTick() {
		w.logger.Debugf("Ignoring non-tick event: %s", event.Name)
		return
	}

	snapshots, err := w.supervisor.ListAllProcesses(ctx)
	if err != nil {
		w.logger.Warnf("Skipping tick %s: failed to fetch process roster: %v", event.Name, err)
		return
	}

	w.logger.Debugf("Tick %s: checking %d processes", event.Name, len(snapshots))

	for _, snapshot := range snapshots {
		w.checkProcess(ctx, snapshot)
	}
}

func (w *Watchdog) checkProcess(ctx context.Context, snapshot supervision.ProcessSnapshot) {
	if !IsRestartEligible(snapshot, w.options.MinUptime) {
		w.logger.Debugf("Process %s is not restart-eligible, running: %t, uptime: %v",
			snapshot.ID(), snapshot.Running, snapshot.Uptime())
		return
	}

	limit := ResolveThreshold(snapshot.Name, snapshot.Group, w.options.Thresholds)
	if limit == 0 {
		// no threshold configured for this process, monitoring disabled
		return
	}

	if snapshot.MemoryRSS <= limit {
		return
	}

	w.logger.Infof("Process %s RSS %d bytes exceeds limit %d bytes, restarting",
		snapshot.ID(), snapshot.MemoryRSS, limit)

	outcome := w.restartProcess(ctx, snapshot)
	w.reporter.Report(w.buildRecord(outcome, limit))
}

// restartProcess invokes the restart operation and converts any failure,
// including an unreachable supervision service, into a failed outcome. The
// failure never propagates: the remaining processes of the roster are
// still evaluated, and the next tick reconsiders this process naturally.
func (w *Watchdog) restartProcess(ctx context.Context, snapshot supervision.ProcessSnapshot) RestartOutcome {
	succeeded, err := w.supervisor.RestartProcess(ctx, snapshot.ID())
	if err != nil {
		w.logger.Errorf("Failed to restart process %s: %v", snapshot.ID(), err)
		succeeded = false
	}

	return RestartOutcome{
		ProcessID:   snapshot.ID(),
		Succeeded:   succeeded,
		MemoryBytes: snapshot.MemoryRSS,
	}
}

func (w *Watchdog) buildRecord(outcome RestartOutcome, limit int64) ReportRecord {
	tag := "restarted"
	if !outcome.Succeeded {
		tag = "restart failed"
	}

	var subject string
	if w.options.Name != "" {
		subject = fmt.Sprintf("memwatch [%s]: process %s %s", w.options.Name, outcome.ProcessID, tag)
	} else {
		subject = fmt.Sprintf("memwatch: process %s %s", outcome.ProcessID, tag)
	}

	return ReportRecord{
		Subject:  subject,
		Message:  fmt.Sprintf("resident memory %d bytes exceeded limit %d bytes", outcome.MemoryBytes, limit),
		Severity: SeverityInfo,
	}
}
