package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tct",
	Short: "Tiny Carbon Tracker – a minimal CLI carbon-footprint diary",
	Long: `tct is a single-binary, file-based command-line carbon-footprint diary.
Log commutes, meals, energy use, and waste; tct turns the ledger into daily
and weekly sustainability scores, logging streaks, badges, and personalised
reduction tips. All data is stored as human-readable JSON files in ~/.tct/.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(commuteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(tipsCmd)
	rootCmd.AddCommand(exportCmd)
}
