package client

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aura-workspace/aura/internal/api"
	"github.com/aura-workspace/aura/internal/focus"
	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/notify"
	"github.com/aura-workspace/aura/internal/persist"
	"github.com/aura-workspace/aura/internal/state"
	"github.com/aura-workspace/aura/internal/statemgr"
	"github.com/aura-workspace/aura/internal/store/sqlite"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	dir := t.TempDir()

	st, err := sqlite.New(filepath.Join(dir, "workspace.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	bus := notify.NewBus(32)
	log := zerolog.Nop()
	svc := persist.New(st, bus, filepath.Join(dir, "exports"), log)
	mgr := statemgr.New(state.NewDefault())

	router := api.NewRouter(api.Deps{
		Manager:    mgr,
		Persist:    svc,
		Timer:      focus.NewTimer(mgr, log),
		Bus:        bus,
		WipeLegacy: func() error { return nil },
		IsHealthy:  func() bool { return true },
		Log:        log,
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	require.NoError(t, err)
	return c
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestHealthAndState(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	status, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", status)

	st, err := c.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, st.Theme)
}

func TestCollectionRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	err := c.ReplaceCollection(ctx, model.CollectionTasks,
		json.RawMessage(`[{"id":3,"title":"ship it","priority":"high","status":"todo"}]`))
	require.NoError(t, err)

	raw, err := c.GetCollection(ctx, model.CollectionTasks)
	require.NoError(t, err)
	var tasks []model.Task
	require.NoError(t, json.Unmarshal(raw, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "ship it", tasks[0].Title)

	_, err = c.GetCollection(ctx, "gadgets")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestMergeAndUndo(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.MergeCollection(ctx, model.CollectionSettings,
		json.RawMessage(`{"compactMode":true}`)))

	undone, err := c.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, undone)

	st, err := c.GetState(ctx)
	require.NoError(t, err)
	assert.False(t, st.Settings.CompactMode)
}

func TestSaveAndLastSave(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	stamp, err := c.Save(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, stamp)

	again, err := c.LastSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, stamp, again)
}

func TestImportConfirmGate(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	backup := []byte(`{"version":"1.0","data":{"theme":"dark"}}`)

	err := c.Import(ctx, backup, false)
	assert.True(t, IsConflict(err))

	require.NoError(t, c.Import(ctx, backup, true))
	st, err := c.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, st.Theme)
}

func TestClearResetsWorkspace(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.ReplaceCollection(ctx, model.CollectionNotes,
		json.RawMessage(`[{"id":1,"title":"gone soon"}]`)))

	err := c.Clear(ctx, false)
	assert.True(t, IsConflict(err))

	require.NoError(t, c.Clear(ctx, true))
	st, err := c.GetState(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.Notes)
}

func TestFocusOverClient(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.StartFocus(ctx, 5))
	status, err := c.FocusStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "running", status["status"])

	err = c.StartFocus(ctx, 5)
	assert.True(t, IsConflict(err))
}
