package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenvale/tiny-carbon-tracker/internal/model"
)

func TestBuildReport(t *testing.T) {
	// Friday 2026-02-27; the week runs 2026-02-23 .. 2026-03-01.
	now := time.Date(2026, 2, 27, 18, 0, 0, 0, time.UTC)

	logs := []model.LogEntry{
		{ID: "a", Timestamp: now, Category: model.CategoryTransport, CO2Kg: 3.42, Quantity: 1},
		{ID: "b", Timestamp: now.AddDate(0, 0, -2), Category: model.CategoryDiet, CO2Kg: 1.8, Quantity: 1},
		{ID: "c", Timestamp: now.AddDate(0, 0, -7), Category: model.CategoryEnergy, CO2Kg: 2.4, Quantity: 1},
	}

	r := buildReport(logs, now)

	require.Len(t, r.Weeks, 4)
	assert.Equal(t, "2026-W09", r.Weeks[0].Week)
	assert.Equal(t, "2026-02-23", r.Weeks[0].Start)
	assert.InDelta(t, 5.22, r.Weeks[0].TotalKg, 1e-9)
	assert.Equal(t, 2, r.Weeks[0].Logs)
	assert.InDelta(t, 3.42, r.Weeks[0].Categories["transport"], 1e-9)

	assert.Equal(t, "2026-W08", r.Weeks[1].Week)
	assert.Equal(t, 1, r.Weeks[1].Logs)
	assert.InDelta(t, 2.4, r.Weeks[1].TotalKg, 1e-9)

	// Empty weeks score 0 and carry no logs.
	assert.Equal(t, 0, r.Weeks[3].Logs)
	assert.Equal(t, 0, r.Weeks[3].Score)

	require.Len(t, r.Days, 7)
	assert.Equal(t, "2026-02-23", r.Days[0].Day)
	assert.Equal(t, "2026-03-01", r.Days[6].Day)
	// A day with no entries totals 0 kg and scores a default 100.
	assert.Equal(t, 100, r.Days[0].Score)
	// Friday carries the transport entry.
	assert.InDelta(t, 3.42, r.Days[4].Kg, 1e-9)
	assert.Equal(t, 83, r.Days[4].Score)
}
