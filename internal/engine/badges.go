package engine

// Badge pairs display metadata with the rule that earns it.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Check       func(Snapshot) bool
}

// Badges is the fixed achievement catalog. Its order doubles as the
// suggested progression: NextBadge reports the first unearned badge in
// this order, so reordering entries changes that answer.
var Badges = []Badge{
	{
		ID:          "first_log",
		Name:        "First Step",
		Description: "Log your first activity",
		Icon:        "🌱",
		Check:       func(s Snapshot) bool { return s.TotalLogs >= 1 },
	},
	{
		ID:          "week_streak_3",
		Name:        "Consistent",
		Description: "3-day logging streak",
		Icon:        "🔥",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 3 },
	},
	{
		ID:          "week_streak_7",
		Name:        "Full Week",
		Description: "7-day logging streak",
		Icon:        "⭐",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 7 },
	},
	{
		ID:          "week_streak_14",
		Name:        "Fortnight Hero",
		Description: "14-day logging streak",
		Icon:        "🏅",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 14 },
	},
	{
		ID:          "week_streak_30",
		Name:        "Monthly Master",
		Description: "30-day logging streak",
		Icon:        "🏆",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 30 },
	},
	{
		ID:          "low_carbon_day",
		Name:        "Green Day",
		Description: "Score 80+ on any day",
		Icon:        "💚",
		Check:       func(s Snapshot) bool { return s.BestDailyScore >= 80 },
	},
	{
		ID:          "perfect_day",
		Name:        "Perfect Day",
		Description: "Score 100 on a day",
		Icon:        "🌟",
		Check:       func(s Snapshot) bool { return s.BestDailyScore >= 100 },
	},
	{
		ID:          "all_categories",
		Name:        "Well-Rounded",
		Description: "Log in all 4 categories in one day",
		Icon:        "🎯",
		Check:       func(s Snapshot) bool { return s.AllCategoriesInOneDay },
	},
	{
		ID:          "fifty_logs",
		Name:        "Dedicated",
		Description: "Log 50 activities total",
		Icon:        "📊",
		Check:       func(s Snapshot) bool { return s.TotalLogs >= 50 },
	},
	{
		ID:          "improvement",
		Name:        "Improver",
		Description: "Weekly score improved over last week",
		Icon:        "📈",
		Check:       func(s Snapshot) bool { return s.WeeklyImproved },
	},
}

// EarnedBadges returns the catalog entries whose rule passes, preserving
// catalog order.
func EarnedBadges(s Snapshot) []Badge {
	var earned []Badge
	for _, b := range Badges {
		if b.Check(s) {
			earned = append(earned, b)
		}
	}
	return earned
}

// NextBadge returns the first badge not yet earned, or nil when all are.
func NextBadge(s Snapshot) *Badge {
	for i := range Badges {
		if !Badges[i].Check(s) {
			return &Badges[i]
		}
	}
	return nil
}
