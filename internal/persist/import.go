package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aura-workspace/aura/internal/metrics"
	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/notify"
	"github.com/aura-workspace/aura/internal/state"
)

// Import reads a backup from r, validates it and, on success, returns a
// fresh application state built from the normalized data, already persisted
// to the document store. The caller resets the live state from the result
// (the reload analog). On any failure nothing is mutated or written.
//
// Parse failures and validation failures surface as distinct errors
// (model.ErrInvalidJSON vs. ErrInvalidBackup / ErrVersionMismatch) so the
// presenting surface can tell "invalid file" apart from "unsupported or
// invalid backup".
func (s *Service) Import(ctx context.Context, r io.Reader) (*state.AppState, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		metrics.ImportsTotal.WithLabelValues("parse_error").Inc()
		return nil, fmt.Errorf("reading backup: %w", model.ErrInvalidJSON)
	}
	if !json.Valid(b) {
		metrics.ImportsTotal.WithLabelValues("parse_error").Inc()
		if s.bus != nil {
			s.bus.Publish(notify.LevelError, "The selected file is not valid JSON.")
		}
		return nil, fmt.Errorf("backup file: %w", model.ErrInvalidJSON)
	}

	data, err := ValidateImportPayload(b)
	if err != nil {
		metrics.ImportsTotal.WithLabelValues("validation_error").Inc()
		if s.bus != nil {
			s.bus.Publish(notify.LevelError, "The file is not a supported backup.")
		}
		return nil, err
	}

	st := state.NewDefault()
	st.ApplyBackup(*data)

	if err := s.SaveAll(ctx, st); err != nil {
		// SaveAll already notified; the live state was never touched.
		metrics.ImportsTotal.WithLabelValues("save_error").Inc()
		return nil, err
	}

	metrics.ImportsTotal.WithLabelValues("ok").Inc()
	if s.bus != nil {
		s.bus.Publish(notify.LevelSuccess, "Backup imported.")
	}
	return st, nil
}
