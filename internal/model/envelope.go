package model

// DataExportVersion is the backup envelope version this build reads and
// writes. Import rejects any other version outright.
const DataExportVersion = "1.0"

// BackupData is the normalized data section of a backup envelope: one field
// per collection, with array collections never nil after normalization.
type BackupData struct {
	Notes         []Note         `json:"notes"`
	Tasks         []Task         `json:"tasks"`
	Snippets      []Snippet      `json:"snippets"`
	Schedule      []ScheduleItem `json:"schedule"`
	Bookmarks     []Bookmark     `json:"bookmarks"`
	SearchHistory []string       `json:"searchHistory"`
	UserProfile   UserProfile    `json:"userProfile"`
	FocusMode     FocusMode      `json:"focusMode"`
	Productivity  Productivity   `json:"productivity"`
	Settings      Settings       `json:"settings"`
	Theme         string         `json:"theme,omitempty"`
}

// BackupEnvelope is the unit of export and import. Either ExportDate or
// Timestamp may carry the export time; exports write ExportDate.
type BackupEnvelope struct {
	Version    string     `json:"version"`
	ExportDate string     `json:"exportDate,omitempty"`
	Timestamp  string     `json:"timestamp,omitempty"`
	Data       BackupData `json:"data"`
}
