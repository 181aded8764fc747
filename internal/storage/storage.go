package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/greenvale/tiny-carbon-tracker/internal/emission"
	"github.com/greenvale/tiny-carbon-tracker/internal/model"
)

// StateVersion is the current on-disk schema version.
const StateVersion = "v2"

// legacyVersion marks the commute-only schema that predated categories.
const legacyVersion = "v1"

// BaseDir returns the root data directory (~/.tct).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tct"), nil
}

// statePath returns the path of the single state document.
func statePath(base string) string {
	return filepath.Join(base, "state.json")
}

// legacyEntry is a log record from the v1 schema: commute-only, no
// category, item, or quantity fields.
type legacyEntry struct {
	ID        string    `json:"id"`
	DateISO   time.Time `json:"dateISO"`
	Transport string    `json:"transport"`
	OneWayKm  float64   `json:"oneWayKm"`
	CO2Kg     float64   `json:"co2Kg"`
	Notes     *string   `json:"notes,omitempty"`
}

type legacyState struct {
	Version string        `json:"version"`
	Logs    []legacyEntry `json:"logs"`
}

// Load reads the state document. A missing file yields an empty
// current-version state. Legacy v1 documents are migrated in place and
// written back, so migration runs at most once.
func Load(base string) (model.StateFile, error) {
	path := statePath(base)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.StateFile{Version: StateVersion, Logs: []model.LogEntry{}}, nil
	}
	if err != nil {
		return model.StateFile{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var probe struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		log.Warn().Str("backup", backupPath).Msg("corrupt state file backed up")
		return model.StateFile{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}

	if probe.Version == legacyVersion || probe.Version == "" {
		return migrateLegacy(base, path, data)
	}

	var st model.StateFile
	if err := json.Unmarshal(data, &st); err != nil {
		return model.StateFile{}, fmt.Errorf("storage error parsing %s: %w", path, err)
	}
	if st.Logs == nil {
		st.Logs = []model.LogEntry{}
	}
	return st, nil
}

// migrateLegacy converts a v1 document into the current schema and
// persists the result. Legacy entries were all commutes, so each becomes
// a transport entry with quantity 1.
func migrateLegacy(base, path string, data []byte) (model.StateFile, error) {
	var old legacyState
	if err := json.Unmarshal(data, &old); err != nil {
		return model.StateFile{}, fmt.Errorf("storage error parsing legacy %s: %w", path, err)
	}

	st := model.StateFile{Version: StateVersion, Logs: make([]model.LogEntry, 0, len(old.Logs))}
	for _, e := range old.Logs {
		km := e.OneWayKm
		st.Logs = append(st.Logs, model.LogEntry{
			ID:        e.ID,
			Timestamp: e.DateISO,
			Category:  model.CategoryTransport,
			ItemKey:   e.Transport,
			Label:     emission.TransportLabel(e.Transport),
			CO2Kg:     e.CO2Kg,
			Quantity:  1,
			OneWayKm:  &km,
			Notes:     e.Notes,
		})
	}

	if err := Save(base, st); err != nil {
		return model.StateFile{}, fmt.Errorf("persisting migrated state: %w", err)
	}
	log.Info().Int("entries", len(st.Logs)).Msg("migrated legacy state file to " + StateVersion)
	return st, nil
}

// Save atomically writes the state document: temp file, then rename.
func Save(base string, st model.StateFile) error {
	path := statePath(base)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// Append loads the state, appends one entry, and saves. The ledger is
// append-only; entries are never rewritten.
func Append(base string, e model.LogEntry) error {
	st, err := Load(base)
	if err != nil {
		return err
	}
	st.Logs = append(st.Logs, e)
	return Save(base, st)
}
