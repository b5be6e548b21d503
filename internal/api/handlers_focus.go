package api

import (
	"encoding/json"
	"net/http"

	"github.com/aura-workspace/aura/internal/api/respond"
	"github.com/aura-workspace/aura/internal/focus"
)

// FocusHandler drives the focus-session timer.
type FocusHandler struct {
	timer *focus.Timer
}

func NewFocusHandler(timer *focus.Timer) *FocusHandler { return &FocusHandler{timer: timer} }

// Status GET /api/focus
func (h *FocusHandler) Status(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.timer.Status())
}

// Start POST /api/focus/start
func (h *FocusHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Minutes int `json:"minutes"`
	}
	if r.Body != nil {
		// An empty body means the default session length.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if err := h.timer.Start(req.Minutes); err != nil {
		respond.WriteConflict(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.timer.Status())
}

// Pause POST /api/focus/pause
func (h *FocusHandler) Pause(w http.ResponseWriter, r *http.Request) {
	if err := h.timer.Pause(); err != nil {
		respond.WriteConflict(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.timer.Status())
}

// Resume POST /api/focus/resume
func (h *FocusHandler) Resume(w http.ResponseWriter, r *http.Request) {
	if err := h.timer.Resume(); err != nil {
		respond.WriteConflict(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.timer.Status())
}

// Abandon POST /api/focus/abandon
func (h *FocusHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.timer.Abandon(); err != nil {
		respond.WriteConflict(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.timer.Status())
}
