// Package model defines the domain entities held by the workspace state and
// the backup envelope used for export/import.
package model

import "encoding/json"

// Priority levels for tasks.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Task statuses.
const (
	StatusTodo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// Note is a markdown note.
type Note struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
	Created  string   `json:"created"`
}

// Task is a tracked todo item.
type Task struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	DueDate       string `json:"dueDate"`
	Status        string `json:"status"`
	CompletedDate string `json:"completedDate,omitempty"`
}

// Snippet is a saved code fragment.
type Snippet struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Language string   `json:"language"`
	Code     string   `json:"code"`
	Tags     []string `json:"tags"`
}

// ScheduleItem is a recurring weekly schedule entry.
type ScheduleItem struct {
	ID          int64  `json:"id"`
	Day         string `json:"day"`
	Time        string `json:"time"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Completed   bool   `json:"completed"`
}

// Bookmark is a saved resource link.
type Bookmark struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// UserProfile holds the workspace owner's identity fields.
type UserProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Goal       string `json:"goal"`
	JoinedDate string `json:"joinedDate"`
}

// Settings is the flat record of feature toggles. Unknown keys from older or
// newer builds are kept in Extra so they survive a round-trip through
// export and import instead of being dropped.
type Settings struct {
	AutoSave      bool `json:"autoSave"`
	Notifications bool `json:"notifications"`
	SoundEffects  bool `json:"soundEffects"`
	CompactMode   bool `json:"compactMode"`
	ShowCompleted bool `json:"showCompleted"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes known toggles and stashes everything else in Extra.
// A malformed individual field keeps its previous value rather than failing
// the whole record.
func (s *Settings) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		switch k {
		case "autoSave":
			_ = json.Unmarshal(v, &s.AutoSave)
		case "notifications":
			_ = json.Unmarshal(v, &s.Notifications)
		case "soundEffects":
			_ = json.Unmarshal(v, &s.SoundEffects)
		case "compactMode":
			_ = json.Unmarshal(v, &s.CompactMode)
		case "showCompleted":
			_ = json.Unmarshal(v, &s.ShowCompleted)
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]json.RawMessage)
			}
			s.Extra[k] = v
		}
	}
	return nil
}

// MarshalJSON writes known toggles plus any preserved unknown keys.
func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, 5+len(s.Extra))
	for k, v := range s.Extra {
		out[k] = v
	}
	put := func(k string, v interface{}) {
		b, _ := json.Marshal(v)
		out[k] = b
	}
	put("autoSave", s.AutoSave)
	put("notifications", s.Notifications)
	put("soundEffects", s.SoundEffects)
	put("compactMode", s.CompactMode)
	put("showCompleted", s.ShowCompleted)
	return json.Marshal(out)
}

// FocusSession records one completed or abandoned focus interval.
type FocusSession struct {
	Date      string `json:"date"`
	Duration  int    `json:"duration"` // minutes
	Completed bool   `json:"completed"`
}

// MaxFocusSessions bounds FocusMode.Sessions; oldest entries are evicted
// first once the cap is exceeded.
const MaxFocusSessions = 100

// FocusMode aggregates focus-timer statistics. WeeklyHours is derived and
// recomputed from Sessions, never treated as authoritative when loaded.
type FocusMode struct {
	Streak          int            `json:"streak"`
	MinutesToday    int            `json:"minutesToday"`
	WeeklyHours     float64        `json:"weeklyHours"`
	TotalSessions   int            `json:"totalSessions"`
	LastSessionDate string         `json:"lastSessionDate"`
	Sessions        []FocusSession `json:"sessions"`
}

// PushSession appends a session, evicting the oldest entries beyond
// MaxFocusSessions.
func (f *FocusMode) PushSession(s FocusSession) {
	f.Sessions = append(f.Sessions, s)
	if n := len(f.Sessions); n > MaxFocusSessions {
		f.Sessions = append(f.Sessions[:0:0], f.Sessions[n-MaxFocusSessions:]...)
	}
}

// MaxHistoryDays bounds Productivity.History.
const MaxHistoryDays = 30

// ProductivityDay is one day's completion record.
type ProductivityDay struct {
	Date         string `json:"date"`
	Completed    int    `json:"completed"`
	Total        int    `json:"total"`
	FocusMinutes int    `json:"focusMinutes"`
}

// Productivity tracks goals and a bounded daily history. CompletionRate is
// derived from CompletedToday and DailyGoal.
type Productivity struct {
	DailyGoal      int               `json:"dailyGoal"`
	WeeklyGoal     int               `json:"weeklyGoal"`
	CompletedToday int               `json:"completedToday"`
	CompletionRate float64           `json:"completionRate"`
	History        []ProductivityDay `json:"history"`
}

// PushHistory appends a day record, evicting the oldest entries beyond
// MaxHistoryDays.
func (p *Productivity) PushHistory(d ProductivityDay) {
	p.History = append(p.History, d)
	if n := len(p.History); n > MaxHistoryDays {
		p.History = append(p.History[:0:0], p.History[n-MaxHistoryDays:]...)
	}
}
