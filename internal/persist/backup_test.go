package persist

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/notify"
	"github.com/aura-workspace/aura/internal/state"
	"github.com/aura-workspace/aura/internal/store/sqlite"
)

func TestExportFilename(t *testing.T) {
	ts := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)
	if got := ExportFilename(ts); got != "aura-backup-2025-03-07.json" {
		t.Fatalf("filename = %q", got)
	}
}

func TestExportWritesEnvelopeWithEveryCollection(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	st := state.NewDefault()
	st.Notes = []model.Note{{ID: 1, Title: "n"}}
	path, err := svc.Export(ctx, st)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &envelope))
	require.JSONEq(t, `"1.0"`, string(envelope["version"]))

	var data map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	for _, c := range model.Collections {
		if _, ok := data[c.Name]; !ok && c.Name != model.CollectionTheme {
			t.Fatalf("export omitted collection %q", c.Name)
		}
	}

	var exportDate string
	require.NoError(t, json.Unmarshal(envelope["exportDate"], &exportDate))
	if _, err := time.Parse(time.RFC3339, exportDate); err != nil {
		t.Fatalf("exportDate not RFC3339: %q", exportDate)
	}
}

func TestExportRecordsLastBackupStamp(t *testing.T) {
	ctx := context.Background()
	svc, ds, _ := newService(t)

	_, err := svc.Export(ctx, state.NewDefault())
	require.NoError(t, err)

	raw, err := ds.GetValue(ctx, model.CollectionSettings, model.RecordKeyLastBackup)
	require.NoError(t, err)
	require.NotNil(t, raw)
}

func TestImportRoundTripReproducesState(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	st := state.NewDefault()
	st.Notes = []model.Note{{ID: 1, Title: "n", Tags: []string{"t"}}}
	st.Tasks = []model.Task{{ID: 2, Title: "t", Priority: model.PriorityLow, Status: model.StatusDone, CompletedDate: "2025-05-01"}}
	st.Theme = "dark"
	st.Settings.CompactMode = true

	path, err := svc.Export(ctx, st)
	require.NoError(t, err)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := svc.Import(ctx, f)
	require.NoError(t, err)

	require.Equal(t, st.Notes, got.Notes)
	require.Equal(t, st.Tasks, got.Tasks)
	require.Equal(t, "dark", got.Theme)
	require.True(t, got.Settings.CompactMode)
	require.True(t, got.Settings.AutoSave, "object collections carry defaults forward")
}

func TestImportCorruptJSONRejectedWithoutMutation(t *testing.T) {
	ctx := context.Background()
	svc, ds, bus := newService(t)

	// Pre-existing stored data that must survive the failed import.
	require.NoError(t, ds.SetValue(ctx, model.CollectionTheme, model.RecordKeyCurrent, "dark"))

	_, err := svc.Import(ctx, strings.NewReader(`{ "version": "1.0", "data": { invalid json }`))
	if !errors.Is(err, model.ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}

	notes := bus.Drain()
	if len(notes) != 1 || notes[0].Level != notify.LevelError {
		t.Fatalf("expected parse-error notification, got %+v", notes)
	}
	raw, err := ds.GetValue(ctx, model.CollectionTheme, model.RecordKeyCurrent)
	require.NoError(t, err)
	require.Equal(t, `"dark"`, string(raw), "store must be untouched by a failed import")
}

func TestImportWrongVersionRejectedDistinctly(t *testing.T) {
	ctx := context.Background()
	svc, _, bus := newService(t)

	_, err := svc.Import(ctx, strings.NewReader(`{"version":"0.9","data":{}}`))
	if !errors.Is(err, model.ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
	if errors.Is(err, model.ErrInvalidJSON) {
		t.Fatalf("version mismatch must not look like a parse failure")
	}
	notes := bus.Drain()
	if len(notes) != 1 {
		t.Fatalf("expected one notification, got %d", len(notes))
	}
}

func TestImportPersistsNormalizedData(t *testing.T) {
	ctx := context.Background()
	svc, ds, _ := newService(t)

	payload := `{"version":"1.0","data":{"notes":"broken","theme":"dark"}}`
	got, err := svc.Import(ctx, strings.NewReader(payload))
	require.NoError(t, err)
	require.Empty(t, got.Notes)
	require.Equal(t, "dark", got.Theme)

	raw, err := ds.GetValue(ctx, model.CollectionTheme, model.RecordKeyCurrent)
	require.NoError(t, err)
	require.Equal(t, `"dark"`, string(raw))
}

func TestImportSaveFailureLeavesNothingApplied(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	ds, err := sqlite.New(filepath.Join(dir, "workspace.db"))
	require.NoError(t, err)
	defer func() { _ = ds.Close() }()

	fs := &failingStore{DocumentStore: ds, failOn: model.CollectionNotes}
	svc := New(fs, notify.NewBus(16), dir, zerolog.Nop())

	_, err = svc.Import(ctx, strings.NewReader(`{"version":"1.0","data":{}}`))
	if err == nil {
		t.Fatalf("expected import to fail when persistence fails")
	}
}
