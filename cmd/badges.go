package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenvale/tiny-carbon-tracker/internal/engine"
	"github.com/greenvale/tiny-carbon-tracker/internal/storage"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned badges and the next one to chase",
	Args:  cobra.NoArgs,
	RunE:  runBadges,
}

func runBadges(cmd *cobra.Command, args []string) error {
	now := time.Now()

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

	weeklyThis := engine.WeekScore(st.Logs, now)
	weeklyPrev := engine.WeekScore(st.Logs, now.AddDate(0, 0, -7))
	stats := engine.ComputeStats(st.Logs, weeklyThis, weeklyPrev, now)

	earned := engine.EarnedBadges(stats)
	if len(earned) == 0 {
		fmt.Println("No badges yet — log an activity to earn your first one.")
	} else {
		fmt.Printf("Earned %d of %d badges:\n", len(earned), len(engine.Badges))
		for _, b := range earned {
			fmt.Printf("  %s %s — %s\n", b.Icon, b.Name, b.Description)
		}
	}

	if next := engine.NextBadge(stats); next != nil {
		fmt.Printf("Next up: %s %s — %s\n", next.Icon, next.Name, next.Description)
	} else {
		fmt.Println("All badges earned. Impressive.")
	}

	return nil
}
