package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenvale/tiny-carbon-tracker/internal/engine"
	"github.com/greenvale/tiny-carbon-tracker/internal/storage"
)

var tipsCount int

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Show personalised reduction tips for this week",
	Args:  cobra.NoArgs,
	RunE:  runTips,
}

func init() {
	tipsCmd.Flags().IntVarP(&tipsCount, "count", "n", 5, "Number of tips to show")
}

func runTips(cmd *cobra.Command, args []string) error {
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

	totals := engine.ClippedCategoryTotals(engine.WeekEntries(st.Logs, now))
	worst := engine.WorstCategory(totals)

	fmt.Printf("Focus area: %s (%.1f kg CO₂e this week — your highest category)\n\n",
		worst, totals[worst])

	for i, tip := range engine.PersonalizedTips(totals, tipsCount) {
		fmt.Printf("%d. [%s] %s\n", i+1, tip.Category, tip.Text)
	}

	return nil
}
