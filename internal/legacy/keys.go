package legacy

import "github.com/aura-workspace/aura/internal/model"

// Mapping binds one legacy flat key to its destination collection and
// record key.
type Mapping struct {
	LegacyKey  string
	Collection string
	RecordKey  string
}

// KeyMap is the fixed legacy-to-current key mapping. The theme entry kept
// its pre-rebrand key name, and the last-backup timestamp folds into the
// settings collection under its own record key.
var KeyMap = []Mapping{
	{"aura-notes", model.CollectionNotes, model.RecordKeyCurrent},
	{"aura-tasks", model.CollectionTasks, model.RecordKeyCurrent},
	{"aura-snippets", model.CollectionSnippets, model.RecordKeyCurrent},
	{"aura-schedule", model.CollectionSchedule, model.RecordKeyCurrent},
	{"aura-settings", model.CollectionSettings, model.RecordKeyCurrent},
	{"aura-productivity", model.CollectionProductivity, model.RecordKeyCurrent},
	{"aura-bookmarks", model.CollectionBookmarks, model.RecordKeyCurrent},
	{"aura-search-history", model.CollectionSearchHistory, model.RecordKeyCurrent},
	{"aura-user-profile", model.CollectionUserProfile, model.RecordKeyCurrent},
	{"aura-focus-data", model.CollectionFocusMode, model.RecordKeyCurrent},
	{"aura-last-backup", model.CollectionSettings, model.RecordKeyLastBackup},
	{"studyhub-theme", model.CollectionTheme, model.RecordKeyCurrent},
}
