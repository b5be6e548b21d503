// Package focus runs the focus-session countdown and folds finished
// sessions into the focusMode statistics through the state manager.
package focus

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/state"
	"github.com/aura-workspace/aura/internal/statemgr"
)

// Timer statuses.
const (
	StatusIdle    = "idle"
	StatusRunning = "running"
	StatusPaused  = "paused"
)

// DefaultSessionMinutes is the stock focus interval.
const DefaultSessionMinutes = 25

var (
	ErrAlreadyRunning = errors.New("focus session already running")
	ErrNotRunning     = errors.New("no focus session running")
	ErrNotPaused      = errors.New("focus session is not paused")
)

// Status is the externally visible timer state.
type Status struct {
	Status           string `json:"status"`
	PlannedMinutes   int    `json:"plannedMinutes"`
	RemainingSeconds int    `json:"remainingSeconds"`
}

// Timer is a single guarded countdown: exactly one live ticker at a time.
// Pause clears the interval handle; Resume checks it before starting a new
// one, so a pause/resume cycle can never leave two tickers running.
type Timer struct {
	mu  sync.Mutex
	mgr *statemgr.Manager
	log zerolog.Logger
	now func() time.Time

	status    string
	planned   time.Duration
	remaining time.Duration
	stop      chan struct{}
}

// NewTimer returns an idle timer recording into mgr.
func NewTimer(mgr *statemgr.Manager, log zerolog.Logger) *Timer {
	return &Timer{mgr: mgr, log: log, now: time.Now, status: StatusIdle}
}

// Start begins a session of the given length. Starting over a live or
// paused session is refused; the caller stops it first.
func (t *Timer) Start(minutes int) error {
	if minutes <= 0 {
		minutes = DefaultSessionMinutes
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusIdle {
		return ErrAlreadyRunning
	}
	t.status = StatusRunning
	t.planned = time.Duration(minutes) * time.Minute
	t.remaining = t.planned
	t.startTickerLocked()
	return nil
}

// Pause suspends the countdown, clearing the ticker handle.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusRunning {
		return ErrNotRunning
	}
	t.stopTickerLocked()
	t.status = StatusPaused
	return nil
}

// Resume continues a paused countdown. The handle guard means resuming
// twice cannot create a second concurrent ticker.
func (t *Timer) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusPaused {
		return ErrNotPaused
	}
	if t.stop != nil {
		return nil
	}
	t.status = StatusRunning
	t.startTickerLocked()
	return nil
}

// Abandon stops the session and records it as not completed.
func (t *Timer) Abandon() error {
	t.mu.Lock()
	if t.status == StatusIdle {
		t.mu.Unlock()
		return ErrNotRunning
	}
	t.stopTickerLocked()
	elapsed := t.planned - t.remaining
	t.status = StatusIdle
	t.mu.Unlock()

	t.record(elapsed, false)
	return nil
}

// Status reports the current countdown.
func (t *Timer) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Status{
		Status:           t.status,
		PlannedMinutes:   int(t.planned / time.Minute),
		RemainingSeconds: int(t.remaining / time.Second),
	}
}

func (t *Timer) startTickerLocked() {
	stop := make(chan struct{})
	t.stop = stop
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if t.tick() {
					return
				}
			}
		}
	}()
}

// tick decrements the countdown and reports whether the session finished.
func (t *Timer) tick() bool {
	t.mu.Lock()
	if t.status != StatusRunning {
		t.mu.Unlock()
		return true
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		t.mu.Unlock()
		return false
	}
	t.stopTickerLocked()
	t.status = StatusIdle
	planned := t.planned
	t.mu.Unlock()

	t.record(planned, true)
	return true
}

func (t *Timer) stopTickerLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// record folds a finished or abandoned session into focusMode. Streak
// bookkeeping: a completed session on a new day extends the streak when the
// previous session was yesterday and restarts it otherwise.
func (t *Timer) record(elapsed time.Duration, completed bool) {
	minutes := int(elapsed / time.Minute)
	now := t.now().UTC()
	today := now.Format("2006-01-02")

	err := t.mgr.Mutate(func(st *state.AppState) error {
		fm := &st.FocusMode
		fm.PushSession(model.FocusSession{
			Date:      now.Format(time.RFC3339),
			Duration:  minutes,
			Completed: completed,
		})
		fm.TotalSessions++
		if completed {
			fm.MinutesToday += minutes
			switch fm.LastSessionDate {
			case today:
				// streak unchanged
			case now.AddDate(0, 0, -1).Format("2006-01-02"):
				fm.Streak++
			default:
				fm.Streak = 1
			}
			fm.LastSessionDate = today
		}
		st.RecomputeDerived(now)
		return nil
	})
	if err != nil {
		t.log.Warn().Err(err).Msg("could not record focus session")
	}
}
