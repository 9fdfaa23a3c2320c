package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gored/internal/config"
	"github.com/alexiusacademia/gored/internal/version"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	// appConfig holds the environment defaults, loaded before every command.
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gored",
	Short: "Speed Reducer Design Tool",
	Long: `gored - Go Speed Reducer Designer

A CLI tool for the mechanical design of a gear speed reducer:
a V-belt input drive, spur gear pairs and the transmission shafts.

This tool helps mechanical engineers perform:
  - Shaft analysis (shear, moment, slope and deflection diagrams)
  - Static and fatigue safety factors along the shaft
  - AGMA bending and contact stress checks of spur gears
  - V-belt selection, tensions and life estimate
  - Full four-shaft reducer analysis

Defaults can be set in the environment or in a .env file:
  GORED_OUTPUT_DIR, GORED_LOG_LEVEL, GORED_RESOLUTION, GORED_PLOT_FORMAT`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		level, err := cfg.Level()
		if err != nil {
			return err
		}
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
			}),
		))
		appConfig = cfg
		slog.Debug("configuration loaded", "output_dir", cfg.OutputDir, "resolution", cfg.Resolution, "plot_format", cfg.PlotFormat)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gored v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Speed Reducer Designer                               ║")
		fmt.Printf("  ║   %-56s║\n", fmt.Sprintf("%s ©  %s", version.Author, version.Year))
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of gear speed reducers.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Shaft diagrams from point loads and a stepped profile")
		fmt.Println("    • Static and fatigue safety with keyway stress concentration")
		fmt.Println("    • AGMA spur gear stresses and life factors")
		fmt.Println("    • V-belt drive tensions and durability")
		fmt.Println()
		fmt.Println("  Use 'gored --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log calculation steps at debug level")
}

// stringFlag returns the flag value when set on the command line, else fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
