package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenvale/tiny-carbon-tracker/internal/engine"
)

func TestDailyScore(t *testing.T) {
	tests := []struct {
		kg   float64
		want int
	}{
		{0, 100},
		{1, 95},
		{3.42, 83}, // round-trip car commute, 10 km one way
		{10, 50},
		{19.9, 1},
		{20, 0},
		{50, 0},   // clipped, never negative
		{-0.4, 102}, // credits can push past 100; no upper clip
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.DailyScore(tt.kg), "DailyScore(%v)", tt.kg)
	}
}

func TestDailyScoreMonotonic(t *testing.T) {
	prev := engine.DailyScore(0)
	for kg := 0.5; kg <= 30; kg += 0.5 {
		cur := engine.DailyScore(kg)
		assert.LessOrEqual(t, cur, prev, "score must not increase with kg (kg=%v)", kg)
		assert.GreaterOrEqual(t, cur, 0)
		prev = cur
	}
}

func TestWeeklyScore(t *testing.T) {
	assert.Equal(t, 0, engine.WeeklyScore(nil))
	assert.Equal(t, 0, engine.WeeklyScore([]float64{}))

	// Single day degenerates to the daily score.
	assert.Equal(t, 95, engine.WeeklyScore([]float64{1}))

	// Days are scored before averaging: a disastrous day is clipped at 0,
	// not allowed to drag the mean below what [0,100] bands permit.
	assert.Equal(t, 50, engine.WeeklyScore([]float64{0, 1000}))

	// mean(100, 95, 83) = 92.67 → 93
	assert.Equal(t, 93, engine.WeeklyScore([]float64{0, 1, 3.42}))
}

func TestWeeklyScoreOrderIndependent(t *testing.T) {
	totals := []float64{0, 1.5, 3.42, 8, 22, 0.2, 4.4}
	want := engine.WeeklyScore(totals)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]float64(nil), totals...)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, engine.WeeklyScore(shuffled))
	}
}
