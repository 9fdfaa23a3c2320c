package cmd

import (
	"github.com/spf13/cobra"
)

var shaftCmd = &cobra.Command{
	Use:   "shaft",
	Short: "Transmission shaft analysis",
	Long: `Analyze a stepped transmission shaft defined in a JSON file.

The shaft is sampled along its length. Point loads give the shear and
moment diagrams, the curvature is integrated into slope and deflection
and both are corrected so the deflection vanishes at the two bearings.
Stresses are concentrated over keyways and checked against static and
fatigue criteria.

Subcommands:
  analyze  - Compute diagrams and safety factors for a shaft

Example JSON file structure (SI units, m and N):
{
  "label": "Eixo 4",
  "length": 0.16,
  "material": {"preset": "steel1045"},
  "sections": [
    {"start": 0, "diameter": 0.017},
    {"start": 0.02, "diameter": 0.02},
    {"start": 0.14, "diameter": 0.023}
  ],
  "loads": [
    {"position": 0.0975, "force": [-2964.5, -8145.0, 0]}
  ],
  "torque": 357.6,
  "correction_points": [0.014, 0.133],
  "stress_focus": [{"start": 0.0895, "end": 0.1055}],
  "solve_reactions": true
}`,
}

func init() {
	rootCmd.AddCommand(shaftCmd)
}
