package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/aura-workspace/aura/internal/api/recovery"
	"github.com/aura-workspace/aura/internal/focus"
	"github.com/aura-workspace/aura/internal/notify"
	"github.com/aura-workspace/aura/internal/persist"
	"github.com/aura-workspace/aura/internal/statemgr"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Manager    *statemgr.Manager
	Persist    *persist.Service
	Timer      *focus.Timer
	Bus        *notify.Bus
	WipeLegacy func() error
	IsHealthy  func() bool
	Log        zerolog.Logger
}

// NewRouter creates the HTTP router with all workspace routes.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	healthHandler := NewHealthHandler(d.IsHealthy)
	stateHandler := NewStateHandler(d.Manager)
	backupHandler := NewBackupHandler(d.Persist, d.Manager, d.WipeLegacy, d.Log)
	focusHandler := NewFocusHandler(d.Timer)
	notifHandler := NewNotificationsHandler(d.Bus)

	// Health endpoint
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// State endpoints
	router.HandleFunc("/api/state", stateHandler.GetState).Methods("GET")
	router.HandleFunc("/api/state/batch", stateHandler.BatchUpdate).Methods("POST")
	router.HandleFunc("/api/state/undo", stateHandler.Undo).Methods("POST")
	router.HandleFunc("/api/state/{collection}", stateHandler.GetCollection).Methods("GET")
	router.HandleFunc("/api/state/{collection}", stateHandler.PutCollection).Methods("PUT")
	router.HandleFunc("/api/state/{collection}", stateHandler.PatchCollection).Methods("PATCH")

	// Persistence endpoints
	router.HandleFunc("/api/save", backupHandler.Save).Methods("POST")
	router.HandleFunc("/api/save/last", backupHandler.LastSave).Methods("GET")
	router.HandleFunc("/api/backup/export", backupHandler.Export).Methods("POST")
	router.HandleFunc("/api/backup/import", backupHandler.Import).Methods("POST")
	router.HandleFunc("/api/data", backupHandler.Clear).Methods("DELETE")

	// Focus timer endpoints
	router.HandleFunc("/api/focus", focusHandler.Status).Methods("GET")
	router.HandleFunc("/api/focus/start", focusHandler.Start).Methods("POST")
	router.HandleFunc("/api/focus/pause", focusHandler.Pause).Methods("POST")
	router.HandleFunc("/api/focus/resume", focusHandler.Resume).Methods("POST")
	router.HandleFunc("/api/focus/abandon", focusHandler.Abandon).Methods("POST")

	// Notifications endpoint
	router.HandleFunc("/api/notifications", notifHandler.List).Methods("GET")

	// Prometheus metrics
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}
