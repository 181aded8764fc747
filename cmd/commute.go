package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenvale/tiny-carbon-tracker/internal/config"
	"github.com/greenvale/tiny-carbon-tracker/internal/emission"
	"github.com/greenvale/tiny-carbon-tracker/internal/model"
	"github.com/greenvale/tiny-carbon-tracker/internal/storage"
)

var commuteNotes string

var commuteCmd = &cobra.Command{
	Use:   "commute [mode] [km]",
	Short: "Log a round-trip commute",
	Long: `Log a round-trip commute. Mode and one-way distance fall back to the
default_transport and commute_km settings in ~/.tct/config.json, so a fully
configured setup can log the daily commute with a bare "tct commute".`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCommute,
}

func init() {
	commuteCmd.Flags().StringVar(&commuteNotes, "notes", "", "Optional note")
}

func runCommute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	mode := cfg.DefaultTransport
	km := cfg.CommuteKm
	if len(args) >= 1 {
		mode = args[0]
	}
	if len(args) == 2 {
		km, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid distance %q: %w", args[1], err)
		}
	}

	if _, ok := emission.TransportFactors[mode]; !ok {
		return fmt.Errorf("unknown transport mode %q (run \"tct log transport\" to list modes)", mode)
	}
	if km <= 0 {
		return fmt.Errorf("no distance given and commute_km is not configured")
	}

	now := time.Now()
	co2 := emission.TransportCO2Kg(mode, km)
	entry := model.LogEntry{
		ID:        model.NewID(),
		Timestamp: now,
		Category:  model.CategoryTransport,
		ItemKey:   mode,
		Label:     emission.TransportLabel(mode),
		CO2Kg:     co2,
		Quantity:  1,
		OneWayKm:  &km,
	}
	if n := strings.TrimSpace(commuteNotes); n != "" {
		entry.Notes = &n
	}

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := storage.Append(base, entry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Logged %s commute, %.1f km one way: %s\n", entry.Label, km, formatKg(co2))
	return nil
}
