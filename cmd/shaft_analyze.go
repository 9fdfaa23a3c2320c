package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gored/internal/export"
	"github.com/alexiusacademia/gored/internal/reducer"
	"github.com/alexiusacademia/gored/internal/shaft"
	"github.com/spf13/cobra"
)

var (
	shaftAnalyzeFile        string
	shaftAnalyzeShowDiagram bool
	shaftAnalyzeExport      bool
	shaftAnalyzeOutputDir   string
	shaftAnalyzeFormat      string
	shaftAnalyzeResolution  int
	shaftAnalyzeXLSX        string
	shaftAnalyzePDF         string
)

var shaftAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute diagrams and safety factors of a shaft",
	Long: `Compute shear, moment, slope and deflection along a shaft, then the
static and fatigue safety factors at every sample.

With "solve_reactions" set in the file, the bearing reactions at the two
correction points are solved from equilibrium and added to the loads.

Examples:
  gored shaft analyze --file shaft.json
  gored shaft analyze -f shaft.json --diagram
  gored shaft analyze -f shaft.json --export -o plots --format svg
  gored shaft analyze -f shaft.json --xlsx shaft.xlsx --pdf shaft.pdf`,
	RunE: runShaftAnalyze,
}

func init() {
	shaftCmd.AddCommand(shaftAnalyzeCmd)

	shaftAnalyzeCmd.Flags().StringVarP(&shaftAnalyzeFile, "file", "f", "", "Path to shaft JSON file [required]")
	shaftAnalyzeCmd.MarkFlagRequired("file")
	shaftAnalyzeCmd.Flags().IntVarP(&shaftAnalyzeResolution, "resolution", "r", 1000, "Samples per meter when the file sets none")

	// Diagram options
	shaftAnalyzeCmd.Flags().BoolVar(&shaftAnalyzeShowDiagram, "diagram", false, "Show ASCII moment and deflection charts")
	shaftAnalyzeCmd.Flags().BoolVar(&shaftAnalyzeExport, "export", false, "Export diagrams as images")
	shaftAnalyzeCmd.Flags().StringVarP(&shaftAnalyzeOutputDir, "output", "o", "output", "Export diagrams into this directory")
	shaftAnalyzeCmd.Flags().StringVar(&shaftAnalyzeFormat, "format", "png", "Diagram image format (png, svg, pdf, jpg, eps, tif)")

	// Reports
	shaftAnalyzeCmd.Flags().StringVar(&shaftAnalyzeXLSX, "xlsx", "", "Write per-sample results to an Excel workbook")
	shaftAnalyzeCmd.Flags().StringVar(&shaftAnalyzePDF, "pdf", "", "Write a PDF summary report")
}

func runShaftAnalyze(cmd *cobra.Command, args []string) error {
	design, err := shaft.LoadFromFile(shaftAnalyzeFile)
	if err != nil {
		return fmt.Errorf("loading shaft: %w", err)
	}

	cfg, err := design.Config(intFlag(cmd, "resolution", shaftAnalyzeResolution, appConfig.Resolution))
	if err != nil {
		return fmt.Errorf("reading shaft: %w", err)
	}
	if design.SolveReactions {
		a, b := cfg.CorrectionPoints[1], cfg.CorrectionPoints[0]
		if cfg.Loads, err = reducer.WithReactions(cfg.Loads, a, b); err != nil {
			return fmt.Errorf("solving reactions: %w", err)
		}
		slog.Debug("bearing reactions added", "a", a, "b", b, "loads", len(cfg.Loads))
	}

	s, err := shaft.New(cfg)
	if err != nil {
		return fmt.Errorf("building shaft: %w", err)
	}
	slog.Debug("shaft sampled", "label", s.Label, "samples", s.Samples())

	forces := s.CalculateActingForces()
	stress, err := s.CalculateStress()
	if err != nil {
		return fmt.Errorf("calculating stress: %w", err)
	}

	printShaftReport(s, forces, stress)

	if shaftAnalyzeShowDiagram {
		printShaftCharts(s, forces, stress)
	}

	report := export.ShaftReport{Label: s.Label, Forces: forces, Stress: stress}
	if shaftAnalyzeExport || cmd.Flags().Changed("output") {
		dir := stringFlag(cmd, "output", shaftAnalyzeOutputDir, appConfig.OutputDir)
		format := stringFlag(cmd, "format", shaftAnalyzeFormat, appConfig.PlotFormat)
		if err := exportDiagrams(dir, format, report); err != nil {
			return err
		}
	}
	return writeReports(shaftAnalyzeXLSX, shaftAnalyzePDF, "Shaft Analysis", report)
}
