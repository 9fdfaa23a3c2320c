package cmd

import (
	"github.com/spf13/cobra"
)

var reducerCmd = &cobra.Command{
	Use:   "reducer",
	Short: "Complete speed reducer analysis",
	Long: `Analyze the reference four-shaft reducer: a 2:1 V-belt input drive
followed by the 3:1, 5:1 and 2:1 spur gear pairs, with both bearings of
every shaft at 14 mm and 133 mm.

Subcommands:
  analyze  - Run the belt, gear and shaft calculations in sequence

Example JSON file structure (missing fields keep their defaults):
{
  "input_power": 2937,
  "input_velocity": 2335,
  "seconds_of_use": 18025714,
  "roller_efficiency": 0.96,
  "belt_efficiency": 0.96
}`,
}

func init() {
	rootCmd.AddCommand(reducerCmd)
}
