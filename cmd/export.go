package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/greenvale/tiny-carbon-tracker/internal/model"
	"github.com/greenvale/tiny-carbon-tracker/internal/storage"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full ledger to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, yaml")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(st.Logs, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(st.Logs)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding YAML:", err)
			os.Exit(2)
		}
		fmt.Print(string(data))
	default: // csv
		printCSV(st.Logs)
	}

	return nil
}

func printCSV(entries []model.LogEntry) {
	fmt.Println("id,ts,category,item,label,co2_kg,quantity,one_way_km,notes")
	for _, e := range entries {
		km := ""
		if e.OneWayKm != nil {
			km = fmt.Sprintf("%g", *e.OneWayKm)
		}
		notes := ""
		if e.Notes != nil {
			notes = *e.Notes
		}
		fmt.Printf("%s,%s,%s,%s,%s,%g,%d,%s,%s\n",
			csvEscape(e.ID),
			csvEscape(e.Timestamp.Format(time.RFC3339)),
			csvEscape(string(e.EffectiveCategory())),
			csvEscape(e.ItemKey),
			csvEscape(e.Label),
			e.CO2Kg,
			e.Quantity,
			csvEscape(km),
			csvEscape(notes),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
