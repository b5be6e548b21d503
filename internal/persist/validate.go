package persist

import (
	"encoding/json"
	"fmt"

	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/validate"
)

// ValidateImportPayload checks a parsed backup payload and produces its
// normalized data. It is pure: no store access, no state mutation.
//
// Rejections, each mapped to a distinct sentinel:
//   - payload is not a JSON object           -> model.ErrInvalidBackup
//   - version differs from DataExportVersion -> model.ErrVersionMismatch
//   - exportDate/timestamp not ISO date-time -> model.ErrInvalidBackup
//   - data is absent or not an object        -> model.ErrInvalidBackup
//
// Normalization is deterministic and total for any parseable input: array
// collections degrade to empty arrays, object collections are the hardcoded
// defaults shallow-merged with whatever fields the payload supplies, so a
// backup written by an older build cannot null out newer fields.
func ValidateImportPayload(raw json.RawMessage) (*model.BackupData, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope == nil {
		return nil, fmt.Errorf("backup is not an object: %w", model.ErrInvalidBackup)
	}

	version := validate.EnsureString(envelope["version"], "")
	if version != model.DataExportVersion {
		return nil, fmt.Errorf("backup version %q, want %q: %w",
			version, model.DataExportVersion, model.ErrVersionMismatch)
	}

	for _, field := range []string{"exportDate", "timestamp"} {
		raw, ok := envelope[field]
		if !ok {
			continue
		}
		if ts := validate.EnsureString(raw, ""); !validate.IsISODateTime(ts) {
			return nil, fmt.Errorf("backup %s %q is not an ISO date-time: %w",
				field, ts, model.ErrInvalidBackup)
		}
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(envelope["data"], &data); err != nil || data == nil {
		return nil, fmt.Errorf("backup has no data object: %w", model.ErrInvalidBackup)
	}

	return normalizeData(data), nil
}

// normalizeData builds BackupData field by field. Per-collection decoding
// never fails: a malformed collection falls back to its empty or default
// value.
func normalizeData(data map[string]json.RawMessage) *model.BackupData {
	out := &model.BackupData{
		Notes:         []model.Note{},
		Tasks:         []model.Task{},
		Snippets:      []model.Snippet{},
		Schedule:      []model.ScheduleItem{},
		Bookmarks:     []model.Bookmark{},
		SearchHistory: []string{},
		UserProfile:   model.DefaultUserProfile(),
		FocusMode:     model.DefaultFocusMode(),
		Productivity:  model.DefaultProductivity(),
		Settings:      model.DefaultSettings(),
	}

	normalizeArray(data[model.CollectionNotes], &out.Notes)
	normalizeArray(data[model.CollectionTasks], &out.Tasks)
	normalizeArray(data[model.CollectionSnippets], &out.Snippets)
	normalizeArray(data[model.CollectionSchedule], &out.Schedule)
	normalizeArray(data[model.CollectionBookmarks], &out.Bookmarks)
	normalizeArray(data[model.CollectionSearchHistory], &out.SearchHistory)

	normalizeObject(data[model.CollectionUserProfile], &out.UserProfile)
	normalizeObject(data[model.CollectionFocusMode], &out.FocusMode)
	normalizeObject(data[model.CollectionProductivity], &out.Productivity)
	normalizeObject(data[model.CollectionSettings], &out.Settings)

	out.Theme = validate.EnsureString(data[model.CollectionTheme], "")
	return out
}

func normalizeArray[T any](raw json.RawMessage, dst *[]T) {
	coerced := validate.EnsureArray(raw)
	var v []T
	if err := json.Unmarshal(coerced, &v); err != nil || v == nil {
		return // keep the empty default
	}
	*dst = v
}

// normalizeObject merges raw onto dst, which carries defaults. Non-object
// input is coerced to "{}", leaving the defaults untouched.
func normalizeObject(raw json.RawMessage, dst interface{}) {
	_ = json.Unmarshal(validate.EnsureObject(raw), dst)
}
