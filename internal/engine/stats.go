package engine

import (
	"time"

	"github.com/greenvale/tiny-carbon-tracker/internal/datecalc"
	"github.com/greenvale/tiny-carbon-tracker/internal/model"
)

// Snapshot is the derived ledger summary badge predicates evaluate.
// It is recomputed on demand and never persisted.
type Snapshot struct {
	TotalLogs             int
	CurrentStreak         int
	LongestStreak         int
	BestDailyScore        int
	AllCategoriesInOneDay bool
	WeeklyImproved        bool
}

// ComputeStats folds the full ledger into a Snapshot. The weekly scores
// for the current and previous week are supplied by the caller so the
// aggregation itself stays a pure function of its inputs. An empty ledger
// produces a zeroed snapshot.
func ComputeStats(logs []model.LogEntry, weeklyThisWeek, weeklyPrevWeek int, now time.Time) Snapshot {
	streak := ComputeStreak(DayKeys(logs), now)

	best := 0
	for _, kg := range DayTotals(logs) {
		if s := DailyScore(kg); s > best {
			best = s
		}
	}

	dayCats := map[string]map[model.Category]struct{}{}
	for _, e := range logs {
		day := datecalc.DayKey(e.Timestamp)
		if dayCats[day] == nil {
			dayCats[day] = map[model.Category]struct{}{}
		}
		dayCats[day][e.EffectiveCategory()] = struct{}{}
	}
	allCats := false
	for _, cats := range dayCats {
		if len(cats) >= len(model.Categories) {
			allCats = true
			break
		}
	}

	return Snapshot{
		TotalLogs:             len(logs),
		CurrentStreak:         streak.Current,
		LongestStreak:         streak.Longest,
		BestDailyScore:        best,
		AllCategoriesInOneDay: allCats,
		// A zero previous week can never count as improved.
		WeeklyImproved: weeklyPrevWeek > 0 && weeklyThisWeek > weeklyPrevWeek,
	}
}
