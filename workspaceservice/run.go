// Package workspaceservice wires the workspace persistence service together
// and runs its HTTP server.
package workspaceservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aura-workspace/aura/internal/api"
	"github.com/aura-workspace/aura/internal/autosave"
	"github.com/aura-workspace/aura/internal/config"
	"github.com/aura-workspace/aura/internal/focus"
	"github.com/aura-workspace/aura/internal/health"
	"github.com/aura-workspace/aura/internal/legacy"
	"github.com/aura-workspace/aura/internal/localstate"
	"github.com/aura-workspace/aura/internal/logger"
	"github.com/aura-workspace/aura/internal/notify"
	"github.com/aura-workspace/aura/internal/persist"
	"github.com/aura-workspace/aura/internal/state"
	"github.com/aura-workspace/aura/internal/statemgr"
	"github.com/aura-workspace/aura/internal/store/sqlite"
)

// Run starts the workspace service HTTP server and blocks until shutdown
// or error.
func Run() error {
	log := logger.New("aura-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	paths, err := localstate.Resolve(cfg.DataDir)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Cannot resolve data directory")
		return err
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("data_dir", paths.Root).
		Int("autosave_interval_s", cfg.AutoSaveIntervalSeconds).
		Msg("Workspace service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := newServerContext()
	defer stop()

	st, err := sqlite.New(paths.DB)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Document store unavailable")
		return err
	}
	defer func() { _ = st.Close() }()

	bus := notify.NewBus(64)
	svc := persist.New(st, bus, paths.Exports, log)

	// One-time migration of legacy flat-key files into the document store.
	flat := legacy.NewFlatStore(paths.LocalStore)
	if n := legacy.NewMigrator(flat, st, bus, log).Run(ctx); n > 0 {
		log.Info().Int("keys", n).Msg("Migrated legacy data")
	}

	mgr := statemgr.New(loadInitialState(ctx, cfg, svc, log))
	timer := focus.NewTimer(mgr, log)

	saver := autosave.New(
		time.Duration(cfg.AutoSaveIntervalSeconds)*time.Second,
		func(sctx context.Context) error { return svc.SaveAll(sctx, mgr.Snapshot()) },
		log,
	)
	defer saver.Stop()
	bindAutoSave(ctx, mgr, saver)

	svcHealth := startHealthCheckers(ctx, log, st)

	router := api.NewRouter(api.Deps{
		Manager:    mgr,
		Persist:    svc,
		Timer:      timer,
		Bus:        bus,
		WipeLegacy: flat.Wipe,
		IsHealthy:  svcHealth.IsHealthy,
		Log:        log,
	})

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		shutdownTimeout := time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second
		ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Final save before exit so an interactive session never loses
		// its last edits.
		if err := svc.SaveAll(ctxShutdown, mgr.Snapshot()); err != nil {
			log.Error().Stack().Err(err).Msg("Final save failed")
		}
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// loadInitialState hydrates state from the store; a completely empty store
// gets the sample workspace when seeding is enabled.
func loadInitialState(ctx context.Context, cfg *config.Config, svc *persist.Service, log zerolog.Logger) *state.AppState {
	st := state.NewDefault()
	if svc.LoadAll(ctx, st) {
		return st
	}
	if !cfg.SeedSampleData {
		return st
	}
	log.Info().Msg("Empty store, seeding sample workspace")
	st = state.Sample(time.Now().UTC())
	if err := svc.SaveAll(ctx, st); err != nil {
		log.Warn().Err(err).Msg("Could not persist sample workspace")
	}
	return st
}

// bindAutoSave keeps the autosave loop in sync with settings.autoSave.
func bindAutoSave(ctx context.Context, mgr *statemgr.Manager, saver *autosave.Controller) {
	if mgr.Snapshot().Settings.AutoSave {
		saver.Start(ctx)
	}
	mgr.Subscribe(func(st *state.AppState) {
		switch {
		case st.Settings.AutoSave && !saver.Running():
			saver.Start(ctx)
		case !st.Settings.AutoSave && saver.Running():
			saver.Stop()
		}
	})
}

// startHealthCheckers starts the store checker and the service aggregator.
func startHealthCheckers(ctx context.Context, log zerolog.Logger, st *sqlite.DocumentStore) *health.ServiceHealthChecker {
	storeChecker := health.NewStoreChecker("document-store", st, log)
	go storeChecker.Start(ctx, 15*time.Second)

	svcHealth := health.NewServiceHealthChecker(log, storeChecker)
	go svcHealth.Start(ctx, 15*time.Second)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on
// SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
