package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenvale/tiny-carbon-tracker/internal/emission"
	"github.com/greenvale/tiny-carbon-tracker/internal/model"
	"github.com/greenvale/tiny-carbon-tracker/internal/storage"
)

var (
	logQuantity int
	logKm       float64
	logNotes    string
)

var logCmd = &cobra.Command{
	Use:   "log <category> <item>",
	Short: "Log an activity",
	Long: `Log an activity in one of the four categories.

Transport entries take a mode and a one-way distance:
  tct log transport car --km 7.5

Other categories take an item from their catalog, optionally multiplied:
  tct log diet beef_meal
  tct log energy ac_hour --quantity 3
  tct log waste recycled_bottle

Run "tct log <category>" without an item to list the catalog.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVar(&logQuantity, "quantity", 1, "How many units/times (non-transport)")
	logCmd.Flags().Float64Var(&logKm, "km", 0, "One-way distance in km (transport)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Optional note")
}

func runLog(cmd *cobra.Command, args []string) error {
	category := model.Category(args[0])

	valid := false
	for _, c := range model.Categories {
		if c == category {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown category %q (expected transport, diet, energy, or waste)", args[0])
	}

	if len(args) == 1 {
		printCatalog(category)
		return nil
	}

	if category == model.CategoryTransport {
		return logTransport(args[1])
	}
	return logItem(category, args[1])
}

// printCatalog lists the loggable items of a category.
func printCatalog(category model.Category) {
	if category == model.CategoryTransport {
		fmt.Println("Transport modes (kg CO₂e per km, round trip = 2x):")
		for _, mode := range emission.TransportModes {
			fmt.Printf("  %-10s %s (%.3f kg/km)\n", mode, emission.TransportLabel(mode), emission.TransportFactors[mode])
		}
		return
	}
	fmt.Printf("%s activities (kg CO₂e per unit):\n", category)
	for _, it := range emission.Items(category) {
		fmt.Printf("  %-16s %s %s (%+.3f kg)\n", it.Key, it.Icon, it.Label, it.CO2Kg)
	}
}

func logTransport(mode string) error {
	if _, ok := emission.TransportFactors[mode]; !ok {
		return fmt.Errorf("unknown transport mode %q (run \"tct log transport\" to list modes)", mode)
	}
	if logKm <= 0 {
		return fmt.Errorf("transport entries need a positive --km distance")
	}

	now := time.Now()
	km := logKm
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
	if n := strings.TrimSpace(logNotes); n != "" {
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

	fmt.Printf("Logged %s, %.1f km one way: %s\n", entry.Label, km, formatKg(co2))
	return nil
}

func logItem(category model.Category, key string) error {
	item, ok := emission.FindItem(category, key)
	if !ok {
		return fmt.Errorf("unknown %s item %q (run \"tct log %s\" to list items)", category, key, category)
	}

	qty := logQuantity
	if qty < 1 {
		qty = 1
	}

	entry := model.LogEntry{
		ID:        model.NewID(),
		Timestamp: time.Now(),
		Category:  category,
		ItemKey:   item.Key,
		Label:     item.Label,
		CO2Kg:     emission.ItemCO2Kg(category, item.Key, qty),
		Quantity:  qty,
	}
	if n := strings.TrimSpace(logNotes); n != "" {
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

	label := entry.Label
	if qty > 1 {
		label = fmt.Sprintf("%s ×%d", label, qty)
	}
	fmt.Printf("Logged %s %s: %s\n", item.Icon, label, formatKg(entry.CO2Kg))
	return nil
}

// formatKg renders a signed kg CO₂e amount, e.g. "+3.42 kg CO₂e".
func formatKg(kg float64) string {
	return fmt.Sprintf("%+.2f kg CO₂e", kg)
}
