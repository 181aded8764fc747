package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/greenvale/tiny-carbon-tracker/internal/datecalc"
	"github.com/greenvale/tiny-carbon-tracker/internal/engine"
	"github.com/greenvale/tiny-carbon-tracker/internal/model"
	"github.com/greenvale/tiny-carbon-tracker/internal/storage"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a sustainability report for the last four weeks",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json, yaml")
}

// weekReport is one week's aggregate in the report output.
type weekReport struct {
	Week       string             `json:"week" yaml:"week"`
	Start      string             `json:"start" yaml:"start"`
	TotalKg    float64            `json:"total_kg" yaml:"total_kg"`
	Score      int                `json:"score" yaml:"score"`
	Logs       int                `json:"logs" yaml:"logs"`
	Categories map[string]float64 `json:"categories" yaml:"categories"`
}

// dayReport is one current-week day in the report output.
type dayReport struct {
	Day   string  `json:"day" yaml:"day"`
	Kg    float64 `json:"kg" yaml:"kg"`
	Score int     `json:"score" yaml:"score"`
}

type report struct {
	Weeks []weekReport `json:"weeks" yaml:"weeks"`
	Days  []dayReport  `json:"days" yaml:"days"`
}

// buildReport aggregates the ledger into the last four weeks (newest
// first) plus a per-day breakdown of the current week.
func buildReport(logs []model.LogEntry, now time.Time) report {
	var r report

	for w := 0; w < 4; w++ {
		ref := now.AddDate(0, 0, -7*w)
		weekLogs := engine.WeekEntries(logs, ref)

		cats := map[string]float64{}
		for c, kg := range engine.CategoryTotals(weekLogs) {
			cats[string(c)] = kg
		}

		r.Weeks = append(r.Weeks, weekReport{
			Week:       datecalc.WeekKey(ref),
			Start:      datecalc.StartOfWeek(ref),
			TotalKg:    engine.TotalKg(weekLogs),
			Score:      engine.WeekScore(logs, ref),
			Logs:       len(weekLogs),
			Categories: cats,
		})
	}

	dayTotals := engine.DayTotals(engine.WeekEntries(logs, now))
	start := datecalc.StartOfWeek(now)
	for i := 0; i < 7; i++ {
		day := datecalc.AddDays(start, i)
		kg := dayTotals[day]
		r.Days = append(r.Days, dayReport{Day: day, Kg: kg, Score: engine.DailyScore(kg)})
	}

	return r
}

func runReport(cmd *cobra.Command, args []string) error {
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

	r := buildReport(st.Logs, now)

	switch reportFormat {
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding YAML:", err)
			os.Exit(2)
		}
		fmt.Print(string(data))
	case "csv":
		fmt.Println("week,start,total_kg,score,logs")
		for _, w := range r.Weeks {
			fmt.Printf("%s,%s,%.2f,%d,%d\n", w.Week, w.Start, w.TotalKg, w.Score, w.Logs)
		}
	default: // md
		printReportMD(r)
	}

	return nil
}

func printReportMD(r report) {
	fmt.Println("Last 4 weeks")
	fmt.Println("--------------------------------------------")
	for _, w := range r.Weeks {
		fmt.Printf("%s  %6.2f kg  score %s  (%d logs)\n",
			w.Week, w.TotalKg, renderScore(w.Score), w.Logs)
		for _, c := range model.Categories {
			if kg := w.Categories[string(c)]; kg != 0 {
				fmt.Printf("    %-10s %6.2f kg\n", c, kg)
			}
		}
	}

	fmt.Println()
	fmt.Println("This week by day")
	fmt.Println("--------------------------------------------")
	for _, d := range r.Days {
		if d.Kg == 0 {
			fmt.Printf("%s      —\n", d.Day)
			continue
		}
		fmt.Printf("%s  %6.2f kg  score %s\n", d.Day, d.Kg, renderScore(d.Score))
	}
}
