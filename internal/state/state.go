// Package state holds the single in-memory application state all consumers
// read from. Only the persistence service and the state manager may replace
// it wholesale; feature surfaces mutate the sub-collection they own.
package state

import (
	"encoding/json"
	"time"

	"github.com/aura-workspace/aura/internal/model"
)

// AppState is the object of truth for every workspace collection.
type AppState struct {
	Notes         []model.Note         `json:"notes"`
	Tasks         []model.Task         `json:"tasks"`
	Snippets      []model.Snippet      `json:"snippets"`
	Schedule      []model.ScheduleItem `json:"schedule"`
	Bookmarks     []model.Bookmark     `json:"bookmarks"`
	SearchHistory []string             `json:"searchHistory"`
	Settings      model.Settings       `json:"settings"`
	Productivity  model.Productivity   `json:"productivity"`
	UserProfile   model.UserProfile    `json:"userProfile"`
	FocusMode     model.FocusMode      `json:"focusMode"`
	Theme         string               `json:"theme"`
}

// NewDefault returns the hardcoded cold-start state, also used as the
// fallback for absent or malformed stored collections.
func NewDefault() *AppState {
	return &AppState{
		Notes:         []model.Note{},
		Tasks:         []model.Task{},
		Snippets:      []model.Snippet{},
		Schedule:      []model.ScheduleItem{},
		Bookmarks:     []model.Bookmark{},
		SearchHistory: []string{},
		Settings:      model.DefaultSettings(),
		Productivity:  model.DefaultProductivity(),
		UserProfile:   model.DefaultUserProfile(),
		FocusMode:     model.DefaultFocusMode(),
		Theme:         model.DefaultTheme,
	}
}

// Clone returns a deep copy via a JSON round trip. AppState is fully
// JSON-representable, so this cannot fail in practice.
func (s *AppState) Clone() *AppState {
	b, _ := json.Marshal(s)
	out := NewDefault()
	_ = json.Unmarshal(b, out)
	return out
}

// MarshalCollection serializes one collection by name.
func (s *AppState) MarshalCollection(name string) (json.RawMessage, error) {
	v, err := s.collectionValue(name)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (s *AppState) collectionValue(name string) (interface{}, error) {
	switch name {
	case model.CollectionNotes:
		return s.Notes, nil
	case model.CollectionTasks:
		return s.Tasks, nil
	case model.CollectionSnippets:
		return s.Snippets, nil
	case model.CollectionSchedule:
		return s.Schedule, nil
	case model.CollectionBookmarks:
		return s.Bookmarks, nil
	case model.CollectionSearchHistory:
		return s.SearchHistory, nil
	case model.CollectionSettings:
		return s.Settings, nil
	case model.CollectionProductivity:
		return s.Productivity, nil
	case model.CollectionUserProfile:
		return s.UserProfile, nil
	case model.CollectionFocusMode:
		return s.FocusMode, nil
	case model.CollectionTheme:
		return s.Theme, nil
	default:
		return nil, model.ErrUnknownCollection
	}
}

// ApplyCollection replaces one collection from a stored or imported raw
// value. Array collections replace wholesale when the value decodes; object
// collections shallow-merge the value onto the hardcoded default so fields
// introduced by an app update keep their defaults. A malformed value is
// discarded and the method reports false, leaving the current value alone.
func (s *AppState) ApplyCollection(name string, raw json.RawMessage) bool {
	if raw == nil {
		return false
	}
	switch name {
	case model.CollectionNotes:
		return decodeArray(raw, &s.Notes)
	case model.CollectionTasks:
		return decodeArray(raw, &s.Tasks)
	case model.CollectionSnippets:
		return decodeArray(raw, &s.Snippets)
	case model.CollectionSchedule:
		return decodeArray(raw, &s.Schedule)
	case model.CollectionBookmarks:
		return decodeArray(raw, &s.Bookmarks)
	case model.CollectionSearchHistory:
		return decodeArray(raw, &s.SearchHistory)
	case model.CollectionSettings:
		merged := model.DefaultSettings()
		if !mergeObject(raw, &merged) {
			return false
		}
		s.Settings = merged
		return true
	case model.CollectionProductivity:
		merged := model.DefaultProductivity()
		if !mergeObject(raw, &merged) {
			return false
		}
		s.Productivity = merged
		return true
	case model.CollectionUserProfile:
		merged := model.DefaultUserProfile()
		if !mergeObject(raw, &merged) {
			return false
		}
		s.UserProfile = merged
		return true
	case model.CollectionFocusMode:
		merged := model.DefaultFocusMode()
		if !mergeObject(raw, &merged) {
			return false
		}
		s.FocusMode = merged
		return true
	case model.CollectionTheme:
		var theme string
		if err := json.Unmarshal(raw, &theme); err != nil || theme == "" {
			return false
		}
		s.Theme = theme
		return true
	default:
		return false
	}
}

// MergeCollection shallow-merges a partial object onto the current value of
// an object-typed collection. Array and scalar collections reject the merge.
func (s *AppState) MergeCollection(name string, partial json.RawMessage) error {
	switch name {
	case model.CollectionSettings:
		return mergeStrict(partial, &s.Settings)
	case model.CollectionProductivity:
		return mergeStrict(partial, &s.Productivity)
	case model.CollectionUserProfile:
		return mergeStrict(partial, &s.UserProfile)
	case model.CollectionFocusMode:
		return mergeStrict(partial, &s.FocusMode)
	case model.CollectionNotes, model.CollectionTasks, model.CollectionSnippets,
		model.CollectionSchedule, model.CollectionBookmarks,
		model.CollectionSearchHistory, model.CollectionTheme:
		return model.ErrNotObjectCollection
	default:
		return model.ErrUnknownCollection
	}
}

// BackupData snapshots every collection into the export shape.
func (s *AppState) BackupData() model.BackupData {
	c := s.Clone()
	return model.BackupData{
		Notes:         c.Notes,
		Tasks:         c.Tasks,
		Snippets:      c.Snippets,
		Schedule:      c.Schedule,
		Bookmarks:     c.Bookmarks,
		SearchHistory: c.SearchHistory,
		UserProfile:   c.UserProfile,
		FocusMode:     c.FocusMode,
		Productivity:  c.Productivity,
		Settings:      c.Settings,
		Theme:         c.Theme,
	}
}

// ApplyBackup replaces every collection from normalized backup data.
func (s *AppState) ApplyBackup(d model.BackupData) {
	s.Notes = d.Notes
	s.Tasks = d.Tasks
	s.Snippets = d.Snippets
	s.Schedule = d.Schedule
	s.Bookmarks = d.Bookmarks
	s.SearchHistory = d.SearchHistory
	s.UserProfile = d.UserProfile
	s.FocusMode = d.FocusMode
	s.Productivity = d.Productivity
	s.Settings = d.Settings
	if d.Theme != "" {
		s.Theme = d.Theme
	} else {
		s.Theme = model.DefaultTheme
	}
	s.RecomputeDerived(time.Now())
}

// RecomputeDerived refreshes values that are never treated as authoritative
// when loaded: focus weekly hours and the productivity completion rate.
func (s *AppState) RecomputeDerived(now time.Time) {
	weekAgo := now.AddDate(0, 0, -7)
	minutes := 0
	for _, sess := range s.FocusMode.Sessions {
		ts, err := time.Parse(time.RFC3339, sess.Date)
		if err != nil {
			// Session dates from the first generation may be bare dates.
			ts, err = time.Parse("2006-01-02", sess.Date)
		}
		if err == nil && ts.After(weekAgo) {
			minutes += sess.Duration
		}
	}
	s.FocusMode.WeeklyHours = float64(minutes) / 60.0

	if s.Productivity.DailyGoal > 0 {
		rate := float64(s.Productivity.CompletedToday) / float64(s.Productivity.DailyGoal)
		if rate > 1 {
			rate = 1
		}
		s.Productivity.CompletionRate = rate
	} else {
		s.Productivity.CompletionRate = 0
	}
}

func decodeArray[T any](raw json.RawMessage, dst *[]T) bool {
	var v []T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	if v == nil {
		v = []T{}
	}
	*dst = v
	return true
}

// mergeObject unmarshals raw onto dst, which already carries defaults, so
// only the fields present in raw are overwritten.
func mergeObject(raw json.RawMessage, dst interface{}) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil || probe == nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func mergeStrict(raw json.RawMessage, dst interface{}) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil || probe == nil {
		return model.ErrInvalidJSON
	}
	return json.Unmarshal(raw, dst)
}
