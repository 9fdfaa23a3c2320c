package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gored/internal/diagram"
	"github.com/alexiusacademia/gored/internal/export"
	"github.com/alexiusacademia/gored/internal/reducer"
	"github.com/spf13/cobra"
)

var (
	reducerFile       string
	reducerPower      float64
	reducerRPM        float64
	reducerHours      float64
	reducerResolution int
	reducerExport     bool
	reducerOutputDir  string
	reducerFormat     string
	reducerXLSX       string
	reducerPDF        string
	reducerDetail     bool
)

var reducerAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the belt, gear and shaft calculations in sequence",
	Long: `Run the full reducer: the belt drive feeds the first gear pair, every
pair feeds the next, and the tooth and belt forces load the four shafts.
Bearing reactions are solved from equilibrium.

Examples:
  gored reducer analyze
  gored reducer analyze --power 3500 --rpm 1750
  gored reducer analyze -f reducer.json --export -o output
  gored reducer analyze --xlsx reducer.xlsx --pdf reducer.pdf`,
	RunE: runReducerAnalyze,
}

func init() {
	reducerCmd.AddCommand(reducerAnalyzeCmd)

	reducerAnalyzeCmd.Flags().StringVarP(&reducerFile, "file", "f", "", "Path to operating conditions JSON file")
	reducerAnalyzeCmd.Flags().Float64VarP(&reducerPower, "power", "P", 0, "Motor power (W)")
	reducerAnalyzeCmd.Flags().Float64VarP(&reducerRPM, "rpm", "n", 0, "Motor speed (rpm)")
	reducerAnalyzeCmd.Flags().Float64Var(&reducerHours, "hours", 0, "Design life (hours of operation)")
	reducerAnalyzeCmd.Flags().IntVarP(&reducerResolution, "resolution", "r", 1000, "Shaft samples per meter")
	reducerAnalyzeCmd.Flags().BoolVar(&reducerDetail, "detail", false, "Print the full report of every gear pair and shaft")

	reducerAnalyzeCmd.Flags().BoolVar(&reducerExport, "export", false, "Export shaft diagrams as images")
	reducerAnalyzeCmd.Flags().StringVarP(&reducerOutputDir, "output", "o", "output", "Export diagrams into this directory")
	reducerAnalyzeCmd.Flags().StringVar(&reducerFormat, "format", "png", "Diagram image format (png, svg, pdf, jpg, eps, tif)")
	reducerAnalyzeCmd.Flags().StringVar(&reducerXLSX, "xlsx", "", "Write per-sample shaft results to an Excel workbook")
	reducerAnalyzeCmd.Flags().StringVar(&reducerPDF, "pdf", "", "Write a PDF summary report")
}

func runReducerAnalyze(cmd *cobra.Command, args []string) error {
	sys := reducer.DefaultSystem()
	if reducerFile != "" {
		var err error
		if sys, err = reducer.LoadSystem(reducerFile); err != nil {
			return fmt.Errorf("loading reducer: %w", err)
		}
	}
	if cmd.Flags().Changed("power") {
		sys.InputPower = reducerPower
	}
	if cmd.Flags().Changed("rpm") {
		sys.InputVelocity = reducerRPM
	}
	if cmd.Flags().Changed("hours") {
		sys.SecondsOfUse = reducerHours * 3600
	}
	if err := sys.Validate(); err != nil {
		return err
	}

	r, err := reducer.Analyze(sys, reducer.Options{
		Resolution: intFlag(cmd, "resolution", reducerResolution, appConfig.Resolution),
		Logger:     slog.Default(),
	})
	if err != nil {
		return err
	}

	printReducerReport(r)

	reports := make([]export.ShaftReport, len(r.Shafts))
	for i, sr := range r.Shafts {
		reports[i] = export.ShaftReport{Label: sr.Shaft.Label, Forces: sr.Forces, Stress: sr.Stress}
	}
	if reducerExport || cmd.Flags().Changed("output") {
		dir := stringFlag(cmd, "output", reducerOutputDir, appConfig.OutputDir)
		format := stringFlag(cmd, "format", reducerFormat, appConfig.PlotFormat)
		if err := exportDiagrams(dir, format, reports...); err != nil {
			return err
		}
	}
	return writeReports(reducerXLSX, reducerPDF, "Speed Reducer Analysis", reports...)
}

func printReducerReport(r *reducer.Result) {
	printHeader("SPEED REDUCER ANALYSIS")

	printSection("OPERATING CONDITIONS:")
	w := newTable()
	printer.Fprintf(w, "  Input power:\t%.0f W\n", r.System.InputPower)
	printer.Fprintf(w, "  Input speed:\t%.0f rpm\n", r.System.InputVelocity)
	printer.Fprintf(w, "  Design life:\t%.0f h\n", r.System.SecondsOfUse/3600)
	fmt.Fprintf(w, "  Roller / belt efficiency:\t%.2f / %.2f\n", r.System.RollerEfficiency, r.System.BeltEfficiency)
	w.Flush()
	fmt.Println()

	printSection("BELT DRIVE:")
	w = newTable()
	fmt.Fprintf(w, "  Belt length:\t%.2f m\n", r.Belt.BeltLength)
	fmt.Fprintf(w, "  Center distance:\t%.1f mm\n", r.Belt.CenterDistance*1000)
	printer.Fprintf(w, "  Tensions F1 / F2:\t%.1f N / %.1f N\n", r.Belt.F1, r.Belt.F2)
	printer.Fprintf(w, "  Life:\t%.4g passes\n", r.Belt.LifeCycles)
	w.Flush()
	fmt.Println()

	printSection("GEAR PAIRS:")
	w = newTable()
	fmt.Fprintf(w, "  Pair\tw2 (rad/s)\tT2 (N·m)\tCSb pinion\tCSb crown\tCSc pinion\tCSc crown\n")
	fmt.Fprintf(w, "  ────\t──────────\t────────\t──────────\t─────────\t──────────\t─────────\n")
	for _, st := range r.Stages {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			st.Name, st.Forces.W2, st.Forces.T2,
			st.Stress.CSb1, st.Stress.CSb2, st.Stress.CSc1, st.Stress.CSc2)
	}
	w.Flush()
	fmt.Println()

	printSection("SHAFTS:")
	w = newTable()
	fmt.Fprintf(w, "  Shaft\tRa (x, y) N\tRb (x, y) N\tmax y (m)\tmin N_est\tmin N_fad\n")
	fmt.Fprintf(w, "  ─────\t───────────\t───────────\t─────────\t─────────\t─────────\n")
	var lines []string
	for _, sr := range r.Shafts {
		y, _ := sr.Forces.MaxDeflection()
		nEst, estAt := sr.Stress.MinStatic()
		nFad, fadAt := sr.Stress.MinFatigue()
		printer.Fprintf(w, "  %s\t%.1f, %.1f\t%.1f, %.1f\t%.3e\t%.3f\t%.3f\n",
			sr.Shaft.Label, sr.ReactionA[0], sr.ReactionA[1], sr.ReactionB[0], sr.ReactionB[1],
			y, nEst, nFad)
		lines = append(lines, fmt.Sprintf("%s  N_est %.2f at %.1f mm  N_fad %.2f at %.1f mm",
			sr.Shaft.Label, nEst, estAt*1000, nFad, fadAt*1000))
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("CRITICAL SECTIONS", lines))
	fmt.Println()

	if reducerDetail {
		for _, st := range r.Stages {
			printGearReport(st.Transmission.Gear1, st.Transmission.Gear2, st.Forces, st.Stress)
		}
		for _, sr := range r.Shafts {
			printShaftReport(sr.Shaft, sr.Forces, sr.Stress)
		}
	}
}
