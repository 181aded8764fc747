package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenvale/tiny-carbon-tracker/internal/config"
	"github.com/greenvale/tiny-carbon-tracker/internal/datecalc"
	"github.com/greenvale/tiny-carbon-tracker/internal/model"
	"github.com/greenvale/tiny-carbon-tracker/internal/storage"
)

var (
	listWeek     bool
	listAll      bool
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged activities",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show this week's entries")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show the full ledger")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only show one category")
}

func runList(cmd *cobra.Command, args []string) error {
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

	var entries []model.LogEntry
	for _, e := range st.Logs {
		switch {
		case listAll:
		case listWeek:
			if datecalc.WeekKey(e.Timestamp) != datecalc.WeekKey(now) {
				continue
			}
		default:
			// Bare command covers today only.
			if datecalc.DayKey(e.Timestamp) != datecalc.DayKey(now) {
				continue
			}
		}
		if listCategory != "" && e.EffectiveCategory() != model.Category(listCategory) {
			continue
		}
		entries = append(entries, e)
	}

	printEntries(entries, cfg.Location())
	return nil
}

// printEntries groups entries by day (newest first) and prints them.
func printEntries(entries []model.LogEntry, loc *time.Location) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	var currentDay string
	for _, e := range entries {
		day := datecalc.DayKey(e.Timestamp)
		if day != currentDay {
			fmt.Println(day)
			currentDay = day
		}

		detail := ""
		if e.OneWayKm != nil {
			detail = fmt.Sprintf(", %.1f km one way", *e.OneWayKm)
		} else if e.Quantity > 1 {
			detail = fmt.Sprintf(" ×%d", e.Quantity)
		}
		notes := ""
		if e.Notes != nil {
			notes = "  — " + *e.Notes
		}

		fmt.Printf("%s  %-10s %s%s  %s%s\n",
			e.Timestamp.In(loc).Format("15:04"),
			e.EffectiveCategory(),
			e.Label,
			detail,
			formatKg(e.CO2Kg),
			notes,
		)
	}
}
