package notify

import "testing"

func TestPublishAndDrain(t *testing.T) {
	b := NewBus(4)
	b.Publish(LevelInfo, "one")
	b.Publish(LevelSuccess, "two")

	got := b.Drain()
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Message != "one" || got[1].Message != "two" {
		t.Fatalf("order mismatch: %+v", got)
	}
	if got[0].ID == "" || got[0].Time.IsZero() {
		t.Fatalf("notification missing id or time: %+v", got[0])
	}
	if rest := b.Drain(); len(rest) != 0 {
		t.Fatalf("drain should empty the bus, got %d", len(rest))
	}
}

func TestPublishNeverBlocksWhenFull(t *testing.T) {
	b := NewBus(2)
	for i := 0; i < 10; i++ {
		b.Publish(LevelInfo, "n")
	}
	got := b.Drain()
	if len(got) != 2 {
		t.Fatalf("expected buffer-capped backlog of 2, got %d", len(got))
	}
}
