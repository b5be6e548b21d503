package persist

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aura-workspace/aura/internal/model"
)

func TestValidateRejectsNonObject(t *testing.T) {
	for _, in := range []string{`[]`, `"backup"`, `42`, `null`} {
		_, err := ValidateImportPayload(json.RawMessage(in))
		if !errors.Is(err, model.ErrInvalidBackup) {
			t.Fatalf("input %s: expected ErrInvalidBackup, got %v", in, err)
		}
	}
}

func TestValidateVersionGate(t *testing.T) {
	_, err := ValidateImportPayload(json.RawMessage(`{"version":"0.9","data":{"notes":[]}}`))
	if !errors.Is(err, model.ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
	// Missing version is a mismatch too, regardless of data shape.
	_, err = ValidateImportPayload(json.RawMessage(`{"data":{}}`))
	if !errors.Is(err, model.ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch for missing version, got %v", err)
	}
}

func TestValidateRequiresDataObject(t *testing.T) {
	for _, in := range []string{
		`{"version":"1.0"}`,
		`{"version":"1.0","data":[]}`,
		`{"version":"1.0","data":"x"}`,
		`{"version":"1.0","data":null}`,
	} {
		_, err := ValidateImportPayload(json.RawMessage(in))
		if !errors.Is(err, model.ErrInvalidBackup) {
			t.Fatalf("input %s: expected ErrInvalidBackup, got %v", in, err)
		}
	}
}

func TestValidateNormalizesMalformedArrays(t *testing.T) {
	data, err := ValidateImportPayload(json.RawMessage(
		`{"version":"1.0","data":{"notes":"not-an-array","tasks":null}}`))
	if err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	if data.Notes == nil || len(data.Notes) != 0 {
		t.Fatalf("notes should normalize to empty array: %+v", data.Notes)
	}
	if data.Tasks == nil || len(data.Tasks) != 0 {
		t.Fatalf("tasks should normalize to empty array: %+v", data.Tasks)
	}
}

func TestValidateMergesObjectCollectionsOntoDefaults(t *testing.T) {
	data, err := ValidateImportPayload(json.RawMessage(
		`{"version":"1.0","data":{"settings":{"compactMode":true},"productivity":{"dailyGoal":9}}}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !data.Settings.CompactMode {
		t.Fatalf("supplied settings field lost")
	}
	if !data.Settings.AutoSave || !data.Settings.ShowCompleted {
		t.Fatalf("defaults nulled out: %+v", data.Settings)
	}
	if data.Productivity.DailyGoal != 9 || data.Productivity.WeeklyGoal != 30 {
		t.Fatalf("productivity merge wrong: %+v", data.Productivity)
	}
}

func TestValidateIsTotalForArbitraryParseableInput(t *testing.T) {
	inputs := []string{
		`{"version":"1.0","data":{"focusMode":17,"userProfile":[],"theme":{},"searchHistory":{"a":1}}}`,
		`{"version":"1.0","data":{"notes":[{"id":"not-a-number"}]}}`,
		`{"version":"1.0","data":{}}`,
	}
	for _, in := range inputs {
		data, err := ValidateImportPayload(json.RawMessage(in))
		if err != nil {
			t.Fatalf("input %s: expected normalization, got %v", in, err)
		}
		if data.SearchHistory == nil || data.FocusMode.Sessions == nil {
			t.Fatalf("input %s: normalization left nils: %+v", in, data)
		}
	}
}

func TestValidateChecksExportTimestamps(t *testing.T) {
	for _, in := range []string{
		`{"version":"1.0","exportDate":"yesterday","data":{}}`,
		`{"version":"1.0","exportDate":42,"data":{}}`,
		`{"version":"1.0","timestamp":"2026-13-99","data":{}}`,
	} {
		_, err := ValidateImportPayload(json.RawMessage(in))
		if !errors.Is(err, model.ErrInvalidBackup) {
			t.Fatalf("input %s: expected ErrInvalidBackup, got %v", in, err)
		}
	}

	// A well-formed ISO exportDate passes; an absent one is fine too.
	for _, in := range []string{
		`{"version":"1.0","exportDate":"2026-08-29T10:00:00Z","data":{}}`,
		`{"version":"1.0","data":{}}`,
	} {
		if _, err := ValidateImportPayload(json.RawMessage(in)); err != nil {
			t.Fatalf("input %s: unexpected error %v", in, err)
		}
	}
}
