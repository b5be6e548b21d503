package api

import (
	"net/http"

	"github.com/aura-workspace/aura/internal/api/respond"
	"github.com/aura-workspace/aura/internal/notify"
)

// NotificationsHandler hands pending notifications to polling consumers.
type NotificationsHandler struct {
	bus *notify.Bus
}

func NewNotificationsHandler(bus *notify.Bus) *NotificationsHandler {
	return &NotificationsHandler{bus: bus}
}

// List GET /api/notifications
// Drains the queue and returns everything pending.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	pending := h.bus.Drain()
	if pending == nil {
		pending = []notify.Notification{}
	}
	respond.WriteJSON(w, http.StatusOK, pending)
}
