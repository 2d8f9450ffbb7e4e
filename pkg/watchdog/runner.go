package watchdog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/core-tools/hsu-memwatch/pkg/errors"
	"github.com/core-tools/hsu-memwatch/pkg/logging"
)

// Runner drives a watchdog with periodic tick events. Ticks are emitted
// serially from a single goroutine, so one tick's roster is always fully
// processed before the next tick fires and a process can never receive
// duplicate restart requests within a tick.
type Runner struct {
	interval time.Duration
	watchdog *Watchdog
	logger   logging.Logger

	// Control
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mutex  sync.Mutex

	// State
	isRunning bool
}

// NewRunner creates a tick runner for the watchdog
func NewRunner(interval time.Duration, watchdog *Watchdog, logger logging.Logger) *Runner {
	if interval <= 0 {
		interval = 60 * time.Second
	}

	return &Runner{
		interval: interval,
		watchdog: watchdog,
		logger:   logger,
	}
}

// Start begins emitting tick events
func (r *Runner) Start(ctx context.Context) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.isRunning {
		return errors.NewValidationError("watchdog runner is already running", nil)
	}

	r.ctx, r.cancel = context.WithCancel(ctx)
	r.isRunning = true

	r.logger.Infof("Starting watchdog runner, tick interval: %v", r.interval)

	r.wg.Add(1)
	go r.tickLoop()

	return nil
}

// Stop stops emitting tick events and waits for the loop to drain
func (r *Runner) Stop() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !r.isRunning {
		r.logger.Infof("Watchdog runner not running")
		return
	}

	r.cancel()
	r.isRunning = false

	r.wg.Wait()

	r.logger.Infof("Watchdog runner stopped")
}

func (r *Runner) tickLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	eventName := fmt.Sprintf("TICK_%d", int(r.interval.Seconds()))

	for {
		select {
		case <-r.ctx.Done():
			r.logger.Debugf("Watchdog tick loop stopped")
			return

		case now := <-ticker.C:
			r.watchdog.OnTick(r.ctx, TickEvent{Name: eventName, Time: now})
		}
	}
}
