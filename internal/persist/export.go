package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aura-workspace/aura/internal/metrics"
	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/notify"
	"github.com/aura-workspace/aura/internal/state"
)

// ExportFilename returns the backup filename convention for a given day.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("aura-backup-%s.json", t.Format("2006-01-02"))
}

// Export serializes the full state into a backup envelope and writes it
// atomically into the export directory. Every collection is included; the
// export timestamp is recorded under settings/last-backup.
func (s *Service) Export(ctx context.Context, st *state.AppState) (string, error) {
	now := s.now().UTC()
	envelope := model.BackupEnvelope{
		Version:    model.DataExportVersion,
		ExportDate: now.Format(time.RFC3339),
		Data:       st.BackupData(),
	}

	b, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	path := filepath.Join(s.exportDir, ExportFilename(now))
	if err := writeFileAtomic(path, b); err != nil {
		metrics.ExportsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("path", path).Msg("backup export failed")
		if s.bus != nil {
			s.bus.Publish(notify.LevelError, "Exporting your data failed.")
		}
		return "", err
	}

	if err := s.store.SetValue(ctx, model.CollectionSettings, model.RecordKeyLastBackup, envelope.ExportDate); err != nil {
		// The backup file exists; a missing bookkeeping stamp is not worth
		// failing the export over.
		s.log.Warn().Err(err).Msg("could not record export timestamp")
	}

	metrics.ExportsTotal.WithLabelValues("ok").Inc()
	if s.bus != nil {
		s.bus.Publish(notify.LevelSuccess, "Backup exported.")
	}
	return path, nil
}

// writeFileAtomic writes via a temp file and rename so a crashed export
// never leaves a torn backup behind.
func writeFileAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "backup-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}
