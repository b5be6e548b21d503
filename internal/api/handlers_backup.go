package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aura-workspace/aura/internal/api/respond"
	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/persist"
	"github.com/aura-workspace/aura/internal/state"
	"github.com/aura-workspace/aura/internal/statemgr"
)

// BackupHandler fronts save, export, import and clear. Import and clear
// are destructive, so both demand confirm=true; without it nothing is
// touched.
type BackupHandler struct {
	svc        *persist.Service
	mgr        *statemgr.Manager
	wipeLegacy func() error
	log        zerolog.Logger
}

func NewBackupHandler(svc *persist.Service, mgr *statemgr.Manager, wipeLegacy func() error, log zerolog.Logger) *BackupHandler {
	return &BackupHandler{svc: svc, mgr: mgr, wipeLegacy: wipeLegacy, log: log}
}

// Save POST /api/save
func (h *BackupHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SaveAll(r.Context(), h.mgr.Snapshot()); err != nil {
		respond.WriteInternalError(w, "save failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"lastSave": h.svc.LastSave(r.Context()),
	})
}

// LastSave GET /api/save/last
func (h *BackupHandler) LastSave(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"lastSave": h.svc.LastSave(r.Context()),
	})
}

// Export POST /api/backup/export
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	path, err := h.svc.Export(r.Context(), h.mgr.Snapshot())
	if err != nil {
		respond.WriteInternalError(w, "export failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"path": path})
}

// Import POST /api/backup/import?confirm=true, body = backup JSON.
// Applying a backup replaces the whole workspace, so the state manager is
// reset rather than patched live.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		respond.WriteConflict(w, model.ErrConfirmationRequired.Error())
		return
	}
	st, err := h.svc.Import(r.Context(), r.Body)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidJSON):
			respond.WriteBadRequest(w, "invalid file: not valid JSON")
		case errors.Is(err, model.ErrVersionMismatch), errors.Is(err, model.ErrInvalidBackup):
			respond.WriteBadRequest(w, "invalid backup: "+err.Error())
		default:
			respond.WriteInternalError(w, "import failed")
		}
		return
	}
	h.mgr.Reset(st)
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"restartRequired": true})
}

// Clear DELETE /api/data?confirm=true
func (h *BackupHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		respond.WriteConflict(w, model.ErrConfirmationRequired.Error())
		return
	}
	if err := h.svc.ClearAll(r.Context(), h.wipeLegacy); err != nil {
		respond.WriteInternalError(w, "clear failed")
		return
	}
	fresh := state.NewDefault()
	if err := h.svc.SaveAll(context.WithoutCancel(r.Context()), fresh); err != nil {
		h.log.Warn().Err(err).Msg("could not persist defaults after clear")
	}
	h.mgr.Reset(fresh)
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"restartRequired": true})
}

func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}
