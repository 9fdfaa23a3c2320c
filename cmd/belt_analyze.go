package cmd

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/alexiusacademia/gored/internal/belt"
	"github.com/alexiusacademia/gored/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	beltD1, beltD2 float64
	beltRPM        float64
	beltPower      float64
	beltLength     float64
	beltWrapAngle  float64
	beltMu         float64
)

var beltAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Size a V-belt drive and estimate its life",
	Long: `Select the belt length, compute the center distance and the wrap
angle, solve the tight and slack side tensions and estimate the life.

Examples:
  gored belt analyze --d1 0.118 --d2 0.236 --rpm 2335 --power 2937
  gored belt analyze --d1 0.118 --d2 0.236 --rpm 2335 --power 2937 --length 1.4`,
	RunE: runBeltAnalyze,
}

func init() {
	beltCmd.AddCommand(beltAnalyzeCmd)

	beltAnalyzeCmd.Flags().Float64Var(&beltD1, "d1", 0, "Driver pulley pitch diameter (m) [required]")
	beltAnalyzeCmd.Flags().Float64Var(&beltD2, "d2", 0, "Driven pulley pitch diameter (m) [required]")
	beltAnalyzeCmd.Flags().Float64VarP(&beltRPM, "rpm", "n", 0, "Driver speed (rpm) [required]")
	beltAnalyzeCmd.Flags().Float64VarP(&beltPower, "power", "P", 0, "Transmitted power (W) [required]")
	beltAnalyzeCmd.MarkFlagRequired("d1")
	beltAnalyzeCmd.MarkFlagRequired("d2")
	beltAnalyzeCmd.MarkFlagRequired("rpm")
	beltAnalyzeCmd.MarkFlagRequired("power")

	// Optional parameters
	beltAnalyzeCmd.Flags().Float64Var(&beltLength, "length", 0, "Belt length (m), picked from the catalog when 0")
	beltAnalyzeCmd.Flags().Float64Var(&beltWrapAngle, "wrap", 0, "Wrap angle on the driver (rad), derived when 0")
	beltAnalyzeCmd.Flags().Float64Var(&beltMu, "mu", 0.3, "Belt to pulley friction coefficient")
}

func runBeltAnalyze(cmd *cobra.Command, args []string) error {
	if beltD1 <= 0 || beltD2 <= 0 {
		return fmt.Errorf("pulley diameters must be positive")
	}
	p1 := belt.NewPulley(beltD1, beltRPM)
	p2 := belt.NewPulley(beltD2, beltRPM*beltD1/beltD2)
	tr := belt.NewTransmission(p1, p2, beltPower, 0)
	tr.BeltLength = beltLength
	tr.Constants.WrapAngle = beltWrapAngle
	tr.Constants.Mu = beltMu

	r, err := tr.CalculateTransmission()
	if err != nil {
		return err
	}
	slog.Debug("belt drive calculated", "stage", tr.Stage())

	printBeltReport(p1, p2, r)
	return nil
}

func printBeltReport(p1, p2 belt.Pulley, r belt.Result) {
	printHeader("V-BELT DRIVE ANALYSIS")

	printSection("GEOMETRY:")
	w := newTable()
	fmt.Fprintf(w, "  Driver pulley (d):\t%.1f mm\n", p1.PrimitiveDiameter*1000)
	fmt.Fprintf(w, "  Driven pulley (D):\t%.1f mm\n", p2.PrimitiveDiameter*1000)
	fmt.Fprintf(w, "  Ratio (D/d):\t%.3f\n", r.Ratio)
	fmt.Fprintf(w, "  Computed length (Ld):\t%.4f m\n", r.ComputedLength)
	fmt.Fprintf(w, "  Belt length:\t%.4f m\n", r.BeltLength)
	fmt.Fprintf(w, "  Center distance:\t%.1f mm\n", r.CenterDistance*1000)
	fmt.Fprintf(w, "  Wrap angle:\t%.4f rad (%.1f°)\n", r.WrapAngle, r.WrapAngle*180/math.Pi)
	w.Flush()
	fmt.Println()

	printSection("FORCES:")
	w = newTable()
	fmt.Fprintf(w, "  Belt speed:\t%.2f m/s\n", r.Velocity)
	fmt.Fprintf(w, "  Torque on driver:\t%.3f N·m\n", r.Torque)
	printer.Fprintf(w, "  Centrifugal tension (Fc):\t%.3f N\n", r.Fc)
	printer.Fprintf(w, "  Tight side (F1):\t%.2f N\n", r.F1)
	printer.Fprintf(w, "  Slack side (F2):\t%.2f N\n", r.F2)
	w.Flush()
	fmt.Println()

	capped := ""
	if r.LifeCycles >= belt.MaxLifeCycles {
		capped = " (capped)"
	}
	lines := []string{
		printer.Sprintf("Life: %.4g passes%s", r.LifeCycles, capped),
		printer.Sprintf("Life time estimate: %.4g", r.LifeTime),
	}
	fmt.Print(diagram.DrawSummaryBox("DURABILITY", lines))
	fmt.Println()
}
