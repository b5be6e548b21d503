// Package statemgr wraps the application state with subscribe/notify and a
// bounded undo history, decoupling mutation from the surfaces that render
// the result. All mutation flows through the manager so subscription and
// undo guarantees hold uniformly.
package statemgr

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/state"
)

// MaxHistory bounds the undo stack; the oldest snapshot is evicted first.
const MaxHistory = 50

// Listener receives a deep snapshot after every mutation made through the
// manager. Listeners run synchronously on the mutating goroutine.
type Listener func(*state.AppState)

// Manager owns the live application state. Readers get deep snapshots;
// the raw mutable state is never handed out.
type Manager struct {
	mu        sync.Mutex
	st        *state.AppState
	history   []*state.AppState
	listeners map[int]Listener
	nextID    int
}

// New wraps st. The initial state becomes the bottom of the undo stack.
func New(st *state.AppState) *Manager {
	m := &Manager{
		st:        st,
		listeners: make(map[int]Listener),
	}
	m.history = append(m.history, st.Clone())
	return m
}

// Subscribe registers a listener and returns its unsubscribe function.
func (m *Manager) Subscribe(l Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Snapshot returns a deep copy of the current state.
func (m *Manager) Snapshot() *state.AppState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.Clone()
}

// HistoryLen reports the current undo-stack depth.
func (m *Manager) HistoryLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}

// UpdateProperty replaces one top-level collection with value. Object
// collections absorb the value onto their defaults so a partial object
// cannot null out newer fields. User-entered text is escaped on the way in.
func (m *Manager) UpdateProperty(name string, value json.RawMessage) error {
	return m.mutate(func(st *state.AppState) error {
		if !st.ApplyCollection(name, value) {
			if _, err := st.MarshalCollection(name); err != nil {
				return err
			}
			return fmt.Errorf("%s: %w", name, model.ErrInvalidJSON)
		}
		st.SanitizeCollection(name)
		return nil
	})
}

// UpdateNested shallow-merges a partial object onto an object-typed
// collection.
func (m *Manager) UpdateNested(name string, partial json.RawMessage) error {
	return m.mutate(func(st *state.AppState) error {
		if err := st.MergeCollection(name, partial); err != nil {
			return err
		}
		st.SanitizeCollection(name)
		return nil
	})
}

// BatchUpdate applies several property replacements as one mutation: one
// snapshot, one notification. The batch is staged on a copy and swapped in
// only when every entry applies, so an unknown name or malformed value
// rejects the whole batch and the live state stays untouched.
func (m *Manager) BatchUpdate(partial map[string]json.RawMessage) error {
	return m.mutate(func(st *state.AppState) error {
		staged := st.Clone()
		for name, value := range partial {
			if _, err := staged.MarshalCollection(name); err != nil {
				return err
			}
			if !staged.ApplyCollection(name, value) {
				return fmt.Errorf("%s: %w", name, model.ErrInvalidJSON)
			}
			staged.SanitizeCollection(name)
		}
		*st = *staged
		return nil
	})
}

// Mutate runs an arbitrary change against the live state under the
// manager's lock, with the same snapshot/notify semantics as the typed
// mutation methods. Feature surfaces use this instead of holding a raw
// state reference.
func (m *Manager) Mutate(fn func(*state.AppState) error) error {
	return m.mutate(fn)
}

func (m *Manager) mutate(fn func(*state.AppState) error) error {
	m.mu.Lock()
	if err := fn(m.st); err != nil {
		m.mu.Unlock()
		return err
	}
	m.pushSnapshotLocked()
	snap, listeners := m.st.Clone(), m.listenersLocked()
	m.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
	return nil
}

// Undo restores the previous snapshot, if any, and notifies listeners.
// The undo stack is in-memory only; it does not survive a restart.
func (m *Manager) Undo() bool {
	m.mu.Lock()
	if len(m.history) < 2 {
		m.mu.Unlock()
		return false
	}
	m.history = m.history[:len(m.history)-1]
	m.st = m.history[len(m.history)-1].Clone()
	snap, listeners := m.st.Clone(), m.listenersLocked()
	m.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
	return true
}

// Reset replaces the state wholesale, drops the undo history and notifies
// every listener. Import and clear use this as the reload analog.
func (m *Manager) Reset(st *state.AppState) {
	m.mu.Lock()
	m.st = st
	m.history = []*state.AppState{st.Clone()}
	snap, listeners := m.st.Clone(), m.listenersLocked()
	m.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (m *Manager) pushSnapshotLocked() {
	m.history = append(m.history, m.st.Clone())
	if len(m.history) > MaxHistory {
		m.history = m.history[len(m.history)-MaxHistory:]
	}
}

func (m *Manager) listenersLocked() []Listener {
	out := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		out = append(out, l)
	}
	return out
}
