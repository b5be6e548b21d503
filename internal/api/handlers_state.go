package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aura-workspace/aura/internal/api/respond"
	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/statemgr"
)

// StateHandler exposes the application state to render consumers. Reads
// serve deep snapshots; writes go through the state manager so every
// consumer sees the same mutation stream.
type StateHandler struct {
	mgr *statemgr.Manager
}

func NewStateHandler(mgr *statemgr.Manager) *StateHandler { return &StateHandler{mgr: mgr} }

// GetState GET /api/state
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.mgr.Snapshot())
}

// GetCollection GET /api/state/{collection}
func (h *StateHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["collection"]
	raw, err := h.mgr.Snapshot().MarshalCollection(name)
	if err != nil {
		respond.WriteNotFound(w, err.Error())
		return
	}
	respond.WriteRaw(w, http.StatusOK, raw)
}

// PutCollection PUT /api/state/{collection}
func (h *StateHandler) PutCollection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["collection"]
	raw, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(raw) {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.mgr.UpdateProperty(name, raw); err != nil {
		writeStateError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PatchCollection PATCH /api/state/{collection}
func (h *StateHandler) PatchCollection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["collection"]
	raw, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(raw) {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.mgr.UpdateNested(name, raw); err != nil {
		writeStateError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BatchUpdate POST /api/state/batch
func (h *StateHandler) BatchUpdate(w http.ResponseWriter, r *http.Request) {
	var partial map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.mgr.BatchUpdate(partial); err != nil {
		writeStateError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Undo POST /api/state/undo
func (h *StateHandler) Undo(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"undone": h.mgr.Undo()})
}

func writeStateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrUnknownCollection):
		respond.WriteNotFound(w, err.Error())
	case errors.Is(err, model.ErrNotObjectCollection),
		errors.Is(err, model.ErrInvalidJSON):
		respond.WriteBadRequest(w, err.Error())
	default:
		respond.WriteBadRequest(w, err.Error())
	}
}
