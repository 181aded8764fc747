package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/greenvale/tiny-carbon-tracker/internal/config"
	"github.com/greenvale/tiny-carbon-tracker/internal/datecalc"
	"github.com/greenvale/tiny-carbon-tracker/internal/engine"
	"github.com/greenvale/tiny-carbon-tracker/internal/model"
	"github.com/greenvale/tiny-carbon-tracker/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's score, weekly progress, and streak",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var (
	goodScoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	okScoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	badScoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// renderScore colors a score by band: ≥70 green, ≥40 amber, else red.
func renderScore(score int) string {
	s := strconv.Itoa(score)
	switch {
	case score >= 70:
		return goodScoreStyle.Render(s)
	case score >= 40:
		return okScoreStyle.Render(s)
	default:
		return badScoreStyle.Render(s)
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	st, err := storage.Load(base)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	todayKg := engine.DayTotals(st.Logs)[datecalc.DayKey(now)]
	todayScore := engine.DailyScore(todayKg)

	weekEntries := engine.WeekEntries(st.Logs, now)
	weekKg := engine.TotalKg(weekEntries)
	weeklyScore := engine.WeekScore(st.Logs, now)
	streak := engine.ComputeStreak(engine.DayKeys(st.Logs), now)

	fmt.Printf("Week %s (since %s)\n", datecalc.WeekKey(now), datecalc.StartOfWeek(now))
	fmt.Printf("  Today:  %.2f kg CO₂e, score %s\n", todayKg, renderScore(todayScore))
	fmt.Printf("  Week:   %.2f kg CO₂e of %.1f kg target, score %s\n",
		weekKg, cfg.TargetKgPerWeek, renderScore(weeklyScore))

	if over := weekKg - cfg.TargetKgPerWeek; over > 0 {
		fmt.Printf("  Budget: %.2f kg over target\n", over)
	} else {
		fmt.Printf("  Budget: %.2f kg remaining\n", -over)
	}

	fmt.Printf("  Streak: %d day(s), longest %d\n", streak.Current, streak.Longest)

	// Category breakdown for the week, declaration order.
	catTotals := engine.CategoryTotals(weekEntries)
	fmt.Println("  This week by category:")
	for _, c := range model.Categories {
		fmt.Printf("    %-10s %6.2f kg\n", c, catTotals[c])
	}

	return nil
}
