package autosave

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestStartStop(t *testing.T) {
	var saves atomic.Int64
	c := New(10*time.Millisecond, func(context.Context) error {
		saves.Add(1)
		return nil
	}, zerolog.Nop())

	c.Start(context.Background())
	if !c.Running() {
		t.Fatalf("controller should be running")
	}
	time.Sleep(60 * time.Millisecond)
	c.Stop()
	if c.Running() {
		t.Fatalf("controller should be stopped")
	}
	if saves.Load() == 0 {
		t.Fatalf("expected at least one save")
	}

	// No further saves after stop.
	n := saves.Load()
	time.Sleep(40 * time.Millisecond)
	if saves.Load() != n {
		t.Fatalf("saves continued after stop")
	}
}

func TestRepeatedStartDoesNotStackTimers(t *testing.T) {
	var saves atomic.Int64
	c := New(20*time.Millisecond, func(context.Context) error {
		saves.Add(1)
		return nil
	}, zerolog.Nop())

	for i := 0; i < 5; i++ {
		c.Start(context.Background())
	}
	defer c.Stop()

	time.Sleep(110 * time.Millisecond)
	// One live ticker fires ~5 times in the window; stacked tickers would
	// fire ~25 times.
	if n := saves.Load(); n > 8 {
		t.Fatalf("too many saves (%d): timers stacked", n)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c := New(time.Hour, func(context.Context) error { return nil }, zerolog.Nop())
	c.Stop()
	c.Start(context.Background())
	c.Stop()
	c.Stop()
}
