package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gored/internal/diagram"
	"github.com/alexiusacademia/gored/internal/gear"
	"github.com/alexiusacademia/gored/internal/material"
	"github.com/spf13/cobra"
)

var (
	gearZ1, gearZ2        float64
	gearJ1, gearJ2        float64
	gearModule            float64
	gearPressureAngle     float64
	gearThicknessFactor   float64
	gearPower, gearRPM    float64
	gearHours             float64
	gearRollerEfficiency  float64
	gearMaterial          string
	gearQuality, gearKm   float64
	gearApplicationFactor float64
)

var gearAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute forces, stresses and safety factors of a gear pair",
	Long: `Compute the kinematics, tooth forces, AGMA bending and contact
stresses and the fatigue safety factors of a spur gear pair.

Examples:
  gored gear analyze --z1 19 --z2 57 --module 0.003 --power 2706 --rpm 1167.5
  gored gear analyze --z1 43 --z2 86 --module 0.003 --j1 0.27 --j2 0.29 --power 2400 --rpm 77.8 --hours 5006`,
	RunE: runGearAnalyze,
}

func init() {
	gearCmd.AddCommand(gearAnalyzeCmd)

	gearAnalyzeCmd.Flags().Float64Var(&gearZ1, "z1", 0, "Pinion number of teeth [required]")
	gearAnalyzeCmd.Flags().Float64Var(&gearZ2, "z2", 0, "Crown number of teeth [required]")
	gearAnalyzeCmd.Flags().Float64VarP(&gearModule, "module", "m", 0, "Module (m) [required]")
	gearAnalyzeCmd.Flags().Float64VarP(&gearPower, "power", "P", 0, "Input power at the pinion (W) [required]")
	gearAnalyzeCmd.Flags().Float64VarP(&gearRPM, "rpm", "n", 0, "Pinion speed (rpm) [required]")
	gearAnalyzeCmd.MarkFlagRequired("z1")
	gearAnalyzeCmd.MarkFlagRequired("z2")
	gearAnalyzeCmd.MarkFlagRequired("module")
	gearAnalyzeCmd.MarkFlagRequired("power")
	gearAnalyzeCmd.MarkFlagRequired("rpm")

	// Optional parameters
	gearAnalyzeCmd.Flags().Float64Var(&gearJ1, "j1", 0.24, "Pinion AGMA bending geometry factor J")
	gearAnalyzeCmd.Flags().Float64Var(&gearJ2, "j2", 0.28, "Crown AGMA bending geometry factor J")
	gearAnalyzeCmd.Flags().Float64Var(&gearPressureAngle, "pressure-angle", 20, "Pressure angle (degrees)")
	gearAnalyzeCmd.Flags().Float64Var(&gearThicknessFactor, "face", 14, "Face width as a multiple of the module")
	gearAnalyzeCmd.Flags().Float64Var(&gearHours, "hours", 365*(2.0/7)*8, "Design life (hours of operation)")
	gearAnalyzeCmd.Flags().Float64Var(&gearRollerEfficiency, "roller-efficiency", 0.96, "Bearing efficiency")
	gearAnalyzeCmd.Flags().StringVar(&gearMaterial, "material", "steel1045", "Material preset")
	gearAnalyzeCmd.Flags().Float64Var(&gearQuality, "qv", 7, "AGMA transmission accuracy level Qv")
	gearAnalyzeCmd.Flags().Float64Var(&gearKm, "km", 1.6, "Load distribution factor Km")
	gearAnalyzeCmd.Flags().Float64Var(&gearApplicationFactor, "ka", 1, "Application factor Ka")
}

func runGearAnalyze(cmd *cobra.Command, args []string) error {
	if gearZ1 <= 0 || gearZ2 <= 0 || gearModule <= 0 {
		return fmt.Errorf("teeth and module must be positive")
	}
	mat, err := material.Definition{Preset: gearMaterial}.Material()
	if err != nil {
		return err
	}

	pinion := gear.New(gearZ1, gearPressureAngle, gearModule, gearThicknessFactor, gearJ1, mat)
	crown := gear.New(gearZ2, gearPressureAngle, gearModule, gearThicknessFactor, gearJ2, mat)
	tr := gear.NewTransmission(pinion, crown, gearHours*3600, 0)
	tr.Factors.Qv = gearQuality
	tr.Factors.Km = gearKm
	tr.Factors.Ka = gearApplicationFactor

	f := tr.CalculateForces(gearPower, gearRPM, gearRollerEfficiency)
	s, err := tr.CalculateStress()
	if err != nil {
		return err
	}
	slog.Debug("gear pair calculated", "stage", tr.Stage(), "kv", s.Kv)

	printGearReport(pinion, crown, f, s)
	return nil
}

func printGearReport(g1, g2 *gear.Gear, f gear.ForceResult, s gear.StressResult) {
	printHeader("SPUR GEAR PAIR ANALYSIS - AGMA")

	printSection("GEOMETRY:")
	w := newTable()
	fmt.Fprintf(w, "  \tPinion\tCrown\n")
	fmt.Fprintf(w, "  Teeth (Z):\t%.0f\t%.0f\n", g1.NumberOfTeeth, g2.NumberOfTeeth)
	fmt.Fprintf(w, "  Pitch diameter:\t%.1f mm\t%.1f mm\n", g1.PitchDiameter*1000, g2.PitchDiameter*1000)
	fmt.Fprintf(w, "  Face width:\t%.1f mm\t%.1f mm\n", g1.Thickness*1000, g2.Thickness*1000)
	fmt.Fprintf(w, "  Geometry factor J:\t%.2f\t%.2f\n", g1.J, g2.J)
	fmt.Fprintf(w, "  Ratio:\t%.3f\n", g2.NumberOfTeeth/g1.NumberOfTeeth)
	w.Flush()
	fmt.Println()

	printSection("KINEMATICS AND FORCES:")
	w = newTable()
	printer.Fprintf(w, "  Speed:\t%.2f rad/s\t%.2f rad/s\n", f.W1, f.W2)
	printer.Fprintf(w, "  Power:\t%.1f W\t%.1f W\n", f.P1, f.P2)
	printer.Fprintf(w, "  Torque:\t%.2f N·m\t%.2f N·m\n", f.T1, f.T2)
	printer.Fprintf(w, "  Tangential force (Ft):\t%.1f N\t%.1f N\n", f.Ft1, f.Ft2)
	printer.Fprintf(w, "  Normal force (Fn):\t%.1f N\t%.1f N\n", f.Fn1, f.Fn2)
	printer.Fprintf(w, "  Radial force (Fr):\t%.1f N\t%.1f N\n", f.Fr1, f.Fr2)
	fmt.Fprintf(w, "  Gearing efficiency:\t%.4f\n", f.GearingEfficiency)
	w.Flush()
	fmt.Println()

	printSection("STRESSES:")
	w = newTable()
	fmt.Fprintf(w, "  Dynamic factor (Kv):\t%.4f\n", s.Kv)
	printer.Fprintf(w, "  Elastic coefficient (Cp):\t%.0f √Pa\n", s.Cp)
	fmt.Fprintf(w, "  Geometry factor (I):\t%.4f\n", s.I)
	printer.Fprintf(w, "  Bending stress:\t%.2f MPa\t%.2f MPa\n", s.SigmaB1/1e6, s.SigmaB2/1e6)
	printer.Fprintf(w, "  Contact stress:\t%.2f MPa\t%.2f MPa\n", s.SigmaC1/1e6, s.SigmaC2/1e6)
	printer.Fprintf(w, "  Load cycles:\t%.3e\t%.3e\n", s.N1, s.N2)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("Bending safety  pinion %.3f  crown %.3f", s.CSb1, s.CSb2),
		fmt.Sprintf("Contact safety  pinion %.3f  crown %.3f", s.CSc1, s.CSc2),
	}
	fmt.Print(diagram.DrawSummaryBox("FATIGUE SAFETY FACTORS", lines))
	fmt.Println()
}
