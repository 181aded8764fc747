package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/greenvale/tiny-carbon-tracker/internal/datecalc"
	"github.com/greenvale/tiny-carbon-tracker/internal/engine"
)

var streakNow = time.Date(2026, 2, 27, 18, 30, 0, 0, time.UTC)

// daysBack builds day keys for the given offsets from streakNow
// (0 = today, 1 = yesterday, …).
func daysBack(offsets ...int) []string {
	keys := make([]string, len(offsets))
	for i, off := range offsets {
		keys[i] = datecalc.DayKey(streakNow.AddDate(0, 0, -off))
	}
	return keys
}

func TestComputeStreakEmpty(t *testing.T) {
	assert.Equal(t, engine.Streak{}, engine.ComputeStreak(nil, streakNow))
	assert.Equal(t, engine.Streak{}, engine.ComputeStreak([]string{}, streakNow))
}

func TestComputeStreakTodayOnly(t *testing.T) {
	s := engine.ComputeStreak(daysBack(0), streakNow)
	assert.Equal(t, engine.Streak{Current: 1, Longest: 1}, s)
}

func TestComputeStreakFiveConsecutiveDays(t *testing.T) {
	s := engine.ComputeStreak(daysBack(0, 1, 2, 3, 4), streakNow)
	assert.Equal(t, 5, s.Current)
	assert.GreaterOrEqual(t, s.Longest, 5)
}

func TestComputeStreakGracePeriod(t *testing.T) {
	// Nothing today, but yesterday and the two days before: the streak
	// survives at its pre-today length.
	s := engine.ComputeStreak(daysBack(1, 2, 3), streakNow)
	assert.Equal(t, engine.Streak{Current: 3, Longest: 3}, s)

	// Nothing today or yesterday: the streak is gone, history remains.
	s = engine.ComputeStreak(daysBack(2, 3, 4), streakNow)
	assert.Equal(t, engine.Streak{Current: 0, Longest: 3}, s)
}

func TestComputeStreakGapBeforeToday(t *testing.T) {
	// Logs on D-2 and D: only today counts; the gap at D-1 breaks
	// continuity, and history holds no longer run either.
	s := engine.ComputeStreak(daysBack(0, 2), streakNow)
	assert.Equal(t, engine.Streak{Current: 1, Longest: 1}, s)
}

func TestComputeStreakLongestInHistory(t *testing.T) {
	// A 4-day run two weeks ago beats the current 2-day streak.
	s := engine.ComputeStreak(daysBack(0, 1, 14, 15, 16, 17), streakNow)
	assert.Equal(t, engine.Streak{Current: 2, Longest: 4}, s)
}

func TestComputeStreakCurrentSetsRecord(t *testing.T) {
	// The current streak may establish a new longest on the spot.
	s := engine.ComputeStreak(daysBack(0, 1, 2, 10, 11), streakNow)
	assert.Equal(t, engine.Streak{Current: 3, Longest: 3}, s)
}

func TestComputeStreakDuplicateDaysCollapse(t *testing.T) {
	s := engine.ComputeStreak(daysBack(0, 0, 0, 1, 1), streakNow)
	assert.Equal(t, engine.Streak{Current: 2, Longest: 2}, s)
}

func TestComputeStreakAcrossMonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	keys := []string{"2026-03-02", "2026-03-01", "2026-02-28", "2026-02-27"}
	s := engine.ComputeStreak(keys, now)
	assert.Equal(t, engine.Streak{Current: 4, Longest: 4}, s)
}

func TestComputeStreakLongestNeverBelowCurrent(t *testing.T) {
	cases := [][]int{
		{0}, {1}, {0, 1}, {0, 2, 3}, {1, 2, 5, 6, 7}, {0, 1, 2, 3, 9},
	}
	for _, offsets := range cases {
		s := engine.ComputeStreak(daysBack(offsets...), streakNow)
		assert.GreaterOrEqual(t, s.Longest, s.Current, "offsets %v", offsets)
	}
}
