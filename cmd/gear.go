package cmd

import (
	"github.com/spf13/cobra"
)

var gearCmd = &cobra.Command{
	Use:   "gear",
	Short: "Spur gear pair analysis",
	Long: `Analyze a spur gear pair with the AGMA stress equations.

The pinion (gear 1) drives the crown (gear 2). Forces come from the
transmitted power and speed; bending and contact stresses are compared
with the material strengths corrected by the life factors for the
number of load cycles over the design life.

Subcommands:
  analyze  - Compute forces, stresses and safety factors of a mesh`,
}

func init() {
	rootCmd.AddCommand(gearCmd)
}
