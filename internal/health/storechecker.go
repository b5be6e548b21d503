package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// StoreChecker polls a HealthPinger (the document store) and caches the
// result for the service aggregator.
type StoreChecker struct {
	name    string
	pinger  HealthPinger
	healthy atomic.Int32
	log     zerolog.Logger
}

func NewStoreChecker(name string, pinger HealthPinger, log zerolog.Logger) *StoreChecker {
	return &StoreChecker{name: name, pinger: pinger, log: log}
}

func (c *StoreChecker) Name() string { return c.name }

func (c *StoreChecker) IsHealthy() bool { return c.healthy.Load() == 1 }

// Start probes the store on the given interval until ctx is cancelled.
func (c *StoreChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	probe := func() {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := c.pinger.Ping(pctx); err != nil {
			if c.healthy.Swap(0) == 1 {
				c.log.Error().Err(err).Str("checker", c.name).Msg("store health check failed")
			}
			return
		}
		c.healthy.Store(1)
	}

	probe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}
