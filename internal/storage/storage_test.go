package storage_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenvale/tiny-carbon-tracker/internal/model"
	"github.com/greenvale/tiny-carbon-tracker/internal/storage"
)

func TestLoadMissingFile(t *testing.T) {
	base := t.TempDir()
	st, err := storage.Load(base)
	require.NoError(t, err)
	assert.Equal(t, storage.StateVersion, st.Version)
	assert.Empty(t, st.Logs)
}

func TestSaveAndLoad(t *testing.T) {
	base := t.TempDir()
	notes := "carpooled with 2 friends"
	km := 7.5
	st := model.StateFile{
		Version: storage.StateVersion,
		Logs: []model.LogEntry{
			{
				ID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
				Timestamp: time.Date(2026, 2, 27, 7, 45, 0, 0, time.UTC),
				Category:  model.CategoryTransport,
				ItemKey:   "car",
				Label:     "Car",
				CO2Kg:     2.565,
				Quantity:  1,
				OneWayKm:  &km,
				Notes:     &notes,
			},
		},
	}

	require.NoError(t, storage.Save(base, st))

	loaded, err := storage.Load(base)
	require.NoError(t, err)
	require.Len(t, loaded.Logs, 1)
	got := loaded.Logs[0]
	assert.Equal(t, st.Logs[0].ID, got.ID)
	assert.True(t, st.Logs[0].Timestamp.Equal(got.Timestamp))
	assert.Equal(t, model.CategoryTransport, got.Category)
	assert.InDelta(t, 2.565, got.CO2Kg, 1e-9)
	require.NotNil(t, got.OneWayKm)
	assert.InDelta(t, 7.5, *got.OneWayKm, 1e-9)
	require.NotNil(t, got.Notes)
	assert.Equal(t, notes, *got.Notes)
}

func TestAppend(t *testing.T) {
	base := t.TempDir()
	for i := 0; i < 3; i++ {
		err := storage.Append(base, model.LogEntry{
			ID:        model.NewID(),
			Timestamp: time.Now().UTC(),
			Category:  model.CategoryDiet,
			ItemKey:   "vegan_meal",
			Label:     "Vegan meal",
			CO2Kg:     0.4,
			Quantity:  1,
		})
		require.NoError(t, err)
	}

	st, err := storage.Load(base)
	require.NoError(t, err)
	assert.Len(t, st.Logs, 3)
}

func TestLoadCorruptFile(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{bad json"), 0o600))

	_, err := storage.Load(base)
	require.Error(t, err)

	// The corrupt file must be backed up, not silently destroyed.
	_, statErr := os.Stat(path + ".corrupt")
	assert.NoError(t, statErr)
}

func TestLoadMigratesLegacyState(t *testing.T) {
	base := t.TempDir()
	legacy := `{
  "version": "v1",
  "logs": [
    {
      "id": "abc123",
      "dateISO": "2026-02-25T07:40:00Z",
      "transport": "bus",
      "oneWayKm": 5,
      "co2Kg": 0.89,
      "notes": "rainy day"
    }
  ]
}`
	path := filepath.Join(base, "state.json")
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	st, err := storage.Load(base)
	require.NoError(t, err)
	assert.Equal(t, storage.StateVersion, st.Version)
	require.Len(t, st.Logs, 1)

	e := st.Logs[0]
	assert.Equal(t, "abc123", e.ID)
	assert.Equal(t, model.CategoryTransport, e.Category)
	assert.Equal(t, "bus", e.ItemKey)
	assert.Equal(t, "Bus", e.Label)
	assert.Equal(t, 1, e.Quantity)
	require.NotNil(t, e.OneWayKm)
	assert.InDelta(t, 5.0, *e.OneWayKm, 1e-9)
	require.NotNil(t, e.Notes)
	assert.Equal(t, "rainy day", *e.Notes)

	// Migration is persisted: the file on disk is now current-version.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk struct {
		Version string `json:"version"`
	}
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, storage.StateVersion, onDisk.Version)
}
