package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakePinger struct {
	fail atomic.Int32
}

func (f *fakePinger) Ping(ctx context.Context) error {
	if f.fail.Load() == 1 {
		return errors.New("store unavailable")
	}
	return nil
}

func TestStoreChecker_Transitions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &fakePinger{}
	c := NewStoreChecker("document-store", p, zerolog.Nop())
	go c.Start(ctx, 10*time.Millisecond)

	waitTrue(t, func() bool { return c.IsHealthy() })

	p.fail.Store(1)
	waitTrue(t, func() bool { return !c.IsHealthy() })

	p.fail.Store(0)
	waitTrue(t, func() bool { return c.IsHealthy() })
}
