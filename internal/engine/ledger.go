package engine

import (
	"time"

	"github.com/greenvale/tiny-carbon-tracker/internal/datecalc"
	"github.com/greenvale/tiny-carbon-tracker/internal/model"
)

// DayKeys returns the day key of every entry, in ledger order. Duplicates
// are kept; streak computation collapses them.
func DayKeys(logs []model.LogEntry) []string {
	keys := make([]string, len(logs))
	for i, e := range logs {
		keys[i] = datecalc.DayKey(e.Timestamp)
	}
	return keys
}

// DayTotals sums kg CO₂e per distinct day key.
func DayTotals(logs []model.LogEntry) map[string]float64 {
	totals := map[string]float64{}
	for _, e := range logs {
		totals[datecalc.DayKey(e.Timestamp)] += e.CO2Kg
	}
	return totals
}

// TotalKg sums kg CO₂e over all entries.
func TotalKg(logs []model.LogEntry) float64 {
	var total float64
	for _, e := range logs {
		total += e.CO2Kg
	}
	return total
}

// WeekEntries filters the ledger to entries in the week containing t.
func WeekEntries(logs []model.LogEntry, t time.Time) []model.LogEntry {
	wk := datecalc.WeekKey(t)
	var out []model.LogEntry
	for _, e := range logs {
		if datecalc.WeekKey(e.Timestamp) == wk {
			out = append(out, e)
		}
	}
	return out
}

// WeekScore computes the weekly sustainability score for the week
// containing t: per-day totals within that week, each scored, averaged.
func WeekScore(logs []model.LogEntry, t time.Time) int {
	totals := DayTotals(WeekEntries(logs, t))
	daily := make([]float64, 0, len(totals))
	for _, kg := range totals {
		daily = append(daily, kg)
	}
	return WeeklyScore(daily)
}

// CategoryTotals sums kg CO₂e per category. All four categories are
// present in the result even when zero.
func CategoryTotals(logs []model.LogEntry) map[model.Category]float64 {
	totals := make(map[model.Category]float64, len(model.Categories))
	for _, c := range model.Categories {
		totals[c] = 0
	}
	for _, e := range logs {
		totals[e.EffectiveCategory()] += e.CO2Kg
	}
	return totals
}

// ClippedCategoryTotals is CategoryTotals with each entry's contribution
// clipped to be non-negative, the form the tip selector expects (credits
// must not hide a category's gross impact).
func ClippedCategoryTotals(logs []model.LogEntry) map[model.Category]float64 {
	totals := make(map[model.Category]float64, len(model.Categories))
	for _, c := range model.Categories {
		totals[c] = 0
	}
	for _, e := range logs {
		if e.CO2Kg > 0 {
			totals[e.EffectiveCategory()] += e.CO2Kg
		}
	}
	return totals
}
