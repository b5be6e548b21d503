// Package notify carries user-visible notifications from the persistence
// layer out to whatever surface is attached (HTTP consumers, the CLI).
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification for the presenting surface.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one user-visible message.
type Notification struct {
	ID      string    `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Bus is a lightweight in-process pub-sub backed by a buffered channel.
// Publish never blocks: when no consumer is draining the bus, the oldest
// pending notification is dropped in favour of the new one.
type Bus struct {
	ch chan Notification
}

// NewBus creates a bus with the given buffer size.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 16
	}
	return &Bus{ch: make(chan Notification, buffer)}
}

// Publish enqueues a notification, evicting the oldest pending one if the
// buffer is full.
func (b *Bus) Publish(level Level, message string) Notification {
	n := Notification{
		ID:      uuid.New().String(),
		Level:   level,
		Message: message,
		Time:    time.Now().UTC(),
	}
	for {
		select {
		case b.ch <- n:
			return n
		default:
			select {
			case <-b.ch:
			default:
			}
		}
	}
}

// Drain returns every pending notification without blocking.
func (b *Bus) Drain() []Notification {
	var out []Notification
	for {
		select {
		case n := <-b.ch:
			out = append(out, n)
		default:
			return out
		}
	}
}

// Subscribe returns the underlying channel for streaming consumers.
func (b *Bus) Subscribe() <-chan Notification {
	return b.ch
}
