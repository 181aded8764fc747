// Package engine is the analytics core of tct: it turns a ledger of log
// entries into scores, streaks, badges, and personalised tips. Every
// function is pure and total; callers pass an explicit "now" where the
// clock matters.
package engine

import "math"

// DailyScore converts a day's total kg CO₂e into a 0–100 sustainability
// score. Zero emissions score exactly 100; the score is clipped at 0.
func DailyScore(totalKg float64) int {
	score := int(math.Round(100 - totalKg*5))
	if score < 0 {
		return 0
	}
	return score
}

// WeeklyScore averages the daily scores of the given per-day totals,
// rounded to the nearest integer. Each day is clipped to [0,100] before
// averaging, so one very bad day cannot be offset by several good ones.
// An empty input yields 0.
func WeeklyScore(dailyTotals []float64) int {
	if len(dailyTotals) == 0 {
		return 0
	}
	sum := 0
	for _, kg := range dailyTotals {
		sum += DailyScore(kg)
	}
	return int(math.Round(float64(sum) / float64(len(dailyTotals))))
}
