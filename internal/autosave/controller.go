// Package autosave owns the periodic save timer. The timer restarts rather
// than stacks: toggling it off and on repeatedly can never leave two live
// tickers behind.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SaveFunc persists the current state. Errors are already handled and
// surfaced inside the persistence layer.
type SaveFunc func(ctx context.Context) error

// Controller schedules background saves on a fixed interval.
type Controller struct {
	mu       sync.Mutex
	interval time.Duration
	save     SaveFunc
	log      zerolog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a stopped controller.
func New(interval time.Duration, save SaveFunc, log zerolog.Logger) *Controller {
	return &Controller{interval: interval, save: save, log: log}
}

// Start begins the save loop. A running loop is stopped first, so repeated
// starts replace the timer instead of stacking a second one.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	c.stopLocked()
	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	done := make(chan struct{})
	c.done = done
	interval := c.interval
	c.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				if err := c.save(loopCtx); err != nil {
					c.log.Warn().Err(err).Msg("auto-save failed")
				} else {
					c.log.Debug().Msg("auto-saved")
				}
			}
		}
	}()
}

// Stop cancels the save loop and waits for it to exit. Stopping a stopped
// controller is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopLocked()
	c.mu.Unlock()
}

func (c *Controller) stopLocked() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil
}

// Running reports whether the loop is live.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}
