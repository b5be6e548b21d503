package model

// Collection names recognised by the document store. Each collection keeps
// one current snapshot under RecordKeyCurrent.
const (
	CollectionNotes         = "notes"
	CollectionTasks         = "tasks"
	CollectionSnippets      = "snippets"
	CollectionSchedule      = "schedule"
	CollectionSettings      = "settings"
	CollectionProductivity  = "productivity"
	CollectionUserProfile   = "userProfile"
	CollectionFocusMode     = "focusMode"
	CollectionTheme         = "theme"
	CollectionSearchHistory = "searchHistory"
	CollectionBookmarks     = "bookmarks"
)

// Record keys. Every collection stores its snapshot under "current"; the
// settings collection additionally keeps bookkeeping timestamps.
const (
	RecordKeyCurrent    = "current"
	RecordKeyLastSave   = "last-save"
	RecordKeyLastBackup = "last-backup"
)

// CollectionKind classifies how a collection's stored value is treated on
// load and during backup normalization.
type CollectionKind int

const (
	KindArray CollectionKind = iota
	KindObject
	KindScalar
)

// Collections lists every known collection with its kind, in a fixed order
// used by bulk load and save.
var Collections = []struct {
	Name string
	Kind CollectionKind
}{
	{CollectionNotes, KindArray},
	{CollectionTasks, KindArray},
	{CollectionSnippets, KindArray},
	{CollectionSchedule, KindArray},
	{CollectionBookmarks, KindArray},
	{CollectionSearchHistory, KindArray},
	{CollectionSettings, KindObject},
	{CollectionProductivity, KindObject},
	{CollectionUserProfile, KindObject},
	{CollectionFocusMode, KindObject},
	{CollectionTheme, KindScalar},
}
