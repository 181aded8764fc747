package engine

import (
	"sort"
	"time"

	"github.com/greenvale/tiny-carbon-tracker/internal/datecalc"
)

// Streak summarises logging continuity in consecutive calendar days.
type Streak struct {
	Current int
	Longest int
}

// ComputeStreak derives streaks from the day keys present in the ledger.
// Duplicates collapse; multiple entries on one day count as a single
// streak day. The current streak starts at today or, as a one-day grace
// period, at yesterday; it then walks backwards until the first gap.
// Longest is the best run anywhere in history, and the current streak may
// set a new record the day it is computed.
func ComputeStreak(dayKeys []string, now time.Time) Streak {
	if len(dayKeys) == 0 {
		return Streak{}
	}

	days := make(map[string]struct{}, len(dayKeys))
	for _, k := range dayKeys {
		days[k] = struct{}{}
	}

	check := datecalc.DayKey(now)
	if _, ok := days[check]; !ok {
		check = datecalc.AddDays(check, -1)
		if _, ok := days[check]; !ok {
			return Streak{Current: 0, Longest: longestRun(days)}
		}
	}

	current := 0
	for {
		if _, ok := days[check]; !ok {
			break
		}
		current++
		check = datecalc.AddDays(check, -1)
	}

	longest := longestRun(days)
	if current > longest {
		longest = current
	}
	return Streak{Current: current, Longest: longest}
}

// longestRun finds the longest chain of consecutive day keys. Day keys
// sort lexicographically in date order, so a plain string sort suffices.
func longestRun(days map[string]struct{}) int {
	if len(days) == 0 {
		return 0
	}

	sorted := make([]string, 0, len(days))
	for k := range days {
		sorted = append(sorted, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(sorted))) // newest first

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if datecalc.AddDays(sorted[i-1], -1) == sorted[i] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
