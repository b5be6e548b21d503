// Package persist orchestrates bulk load/save of application state against
// the document store and owns backup export, import and validation.
package persist

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aura-workspace/aura/internal/metrics"
	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/notify"
	"github.com/aura-workspace/aura/internal/state"
	"github.com/aura-workspace/aura/internal/store"
)

// Service is the persistence boundary. Storage failures never cross it as
// raw errors: they degrade to defaults, a log line and, when user-visible,
// a notification.
type Service struct {
	store store.Store
	bus   *notify.Bus
	log   zerolog.Logger

	exportDir string
	now       func() time.Time
}

// New wires a persistence service. exportDir is where backup files land.
func New(st store.Store, bus *notify.Bus, exportDir string, log zerolog.Logger) *Service {
	return &Service{
		store:     st,
		bus:       bus,
		log:       log,
		exportDir: exportDir,
		now:       time.Now,
	}
}

// LoadAll reads every collection concurrently and folds the well-typed
// results into st: arrays replace wholesale, object collections merge onto
// their defaults, malformed values are discarded for the default. It never
// fails: storage errors are logged and treated as absent data. The return
// reports whether any collection was found, so the caller can decide to
// seed demo content instead.
func (s *Service) LoadAll(ctx context.Context, st *state.AppState) bool {
	type result struct {
		name string
		raw  []byte
	}
	results := make([]result, len(model.Collections))

	var wg sync.WaitGroup
	for i, c := range model.Collections {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			raw, err := s.store.GetValue(ctx, name, model.RecordKeyCurrent)
			if err != nil {
				s.log.Warn().Err(err).Str("collection", name).Msg("collection unreadable, using default")
				return
			}
			results[i] = result{name: name, raw: raw}
		}(i, c.Name)
	}
	wg.Wait()

	found := false
	for _, r := range results {
		if r.raw == nil {
			continue
		}
		found = true
		if !st.ApplyCollection(r.name, r.raw) {
			metrics.CollectionFallbacksTotal.WithLabelValues(r.name).Inc()
			s.log.Warn().Str("collection", r.name).Msg("stored collection malformed, using default")
		}
	}
	st.RecomputeDerived(s.now())

	if found {
		metrics.LoadsTotal.WithLabelValues("found").Inc()
	} else {
		metrics.LoadsTotal.WithLabelValues("empty").Inc()
	}
	return found
}

// SaveAll writes every collection from st concurrently, plus the last-save
// timestamp. Save is total: every collection is written unconditionally.
// On any failure a user-visible notification is published; writes that
// already succeeded are not rolled back.
func (s *Service) SaveAll(ctx context.Context, st *state.AppState) error {
	var wg sync.WaitGroup
	errs := make([]error, len(model.Collections)+1)

	for i, c := range model.Collections {
		raw, err := st.MarshalCollection(c.Name)
		if err != nil {
			errs[i] = err
			continue
		}
		wg.Add(1)
		go func(i int, name string, raw []byte) {
			defer wg.Done()
			errs[i] = s.store.SetValue(ctx, name, model.RecordKeyCurrent, raw)
		}(i, c.Name, raw)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		stamp := s.now().UTC().Format(time.RFC3339)
		errs[len(errs)-1] = s.store.SetValue(ctx, model.CollectionSettings, model.RecordKeyLastSave, stamp)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			metrics.SavesTotal.WithLabelValues("error").Inc()
			s.log.Error().Err(err).Msg("state save failed")
			if s.bus != nil {
				s.bus.Publish(notify.LevelError, "Saving your data failed. Recent changes may be lost.")
			}
			return err
		}
	}
	metrics.SavesTotal.WithLabelValues("ok").Inc()
	return nil
}

// LastSave returns the recorded last-save timestamp, empty when none.
func (s *Service) LastSave(ctx context.Context) string {
	raw, err := s.store.GetValue(ctx, model.CollectionSettings, model.RecordKeyLastSave)
	if err != nil || raw == nil {
		return ""
	}
	var stamp string
	if err := json.Unmarshal(raw, &stamp); err != nil {
		return ""
	}
	return stamp
}

// ClearAll wipes the document store and any legacy remnants. Callers are
// responsible for the confirmation gate and for resetting the in-memory
// state afterwards.
func (s *Service) ClearAll(ctx context.Context, wipeLegacy func() error) error {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("clearing document store failed")
		if s.bus != nil {
			s.bus.Publish(notify.LevelError, "Clearing your data failed.")
		}
		return err
	}
	if wipeLegacy != nil {
		if err := wipeLegacy(); err != nil {
			// Document data is gone either way; stale legacy files only mean
			// the migrator resurrects them, so surface the problem.
			s.log.Warn().Err(err).Msg("legacy remnants could not be removed")
		}
	}
	if s.bus != nil {
		s.bus.Publish(notify.LevelSuccess, "All data cleared.")
	}
	return nil
}
