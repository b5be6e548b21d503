package legacy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aura-workspace/aura/internal/notify"
	"github.com/aura-workspace/aura/internal/store"
)

// Migrator performs the one-time sweep of the legacy flat store into the
// document store. It runs before any read of application state.
type Migrator struct {
	flat *FlatStore
	dst  store.Store
	bus  *notify.Bus
	log  zerolog.Logger
}

// NewMigrator wires a migrator. bus may be nil when no surface wants the
// one-time migration notice.
func NewMigrator(flat *FlatStore, dst store.Store, bus *notify.Bus, log zerolog.Logger) *Migrator {
	return &Migrator{flat: flat, dst: dst, bus: bus, log: log}
}

// Run migrates every legacy key that is still present and deletes it
// afterwards. A failing key is logged and skipped without aborting the
// rest. Running again with nothing left is a silent no-op, so it returns
// the number of keys migrated for callers that care.
func (m *Migrator) Run(ctx context.Context) int {
	migrated := 0
	for _, mp := range KeyMap {
		raw, ok, err := m.flat.Get(mp.LegacyKey)
		if err != nil {
			m.log.Warn().Err(err).Str("key", mp.LegacyKey).Msg("legacy key unreadable, skipping")
			continue
		}
		if !ok {
			continue
		}

		value := coerceJSON(raw)
		if err := m.dst.SetValue(ctx, mp.Collection, mp.RecordKey, value); err != nil {
			m.log.Warn().Err(err).Str("key", mp.LegacyKey).Msg("legacy key migration failed, skipping")
			continue
		}
		if err := m.flat.Delete(mp.LegacyKey); err != nil {
			// The value is safely in the document store; a leftover file just
			// means the next run rewrites the same snapshot.
			m.log.Warn().Err(err).Str("key", mp.LegacyKey).Msg("could not delete legacy key")
		}
		migrated++
	}

	if migrated > 0 {
		m.log.Info().Int("keys", migrated).Msg("legacy data migrated")
		if m.bus != nil {
			m.bus.Publish(notify.LevelInfo,
				fmt.Sprintf("Your data was upgraded to the new storage format (%d items).", migrated))
		}
	}
	return migrated
}

// coerceJSON returns raw unchanged when it already parses as JSON and
// otherwise quotes it as a JSON string. The first storage generation kept
// bare scalars (e.g. the theme name) without quoting.
func coerceJSON(raw string) json.RawMessage {
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw)
	}
	quoted, _ := json.Marshal(raw)
	return quoted
}
