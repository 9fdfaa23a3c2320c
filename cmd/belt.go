package cmd

import (
	"github.com/spf13/cobra"
)

var beltCmd = &cobra.Command{
	Use:   "belt",
	Short: "V-belt drive analysis",
	Long: `Analyze a V-belt drive between two pulleys.

The belt is picked from a catalog of standard lengths, then the center
distance, wrap angle, belt tensions and the belt life in passes are
computed.

Subcommands:
  analyze  - Size a belt drive and estimate its life`,
}

func init() {
	rootCmd.AddCommand(beltCmd)
}
