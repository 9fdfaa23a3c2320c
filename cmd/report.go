package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gored/internal/diagram"
	"github.com/alexiusacademia/gored/internal/export"
	"github.com/alexiusacademia/gored/internal/shaft"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands in the large figures of the reports.
var printer = message.NewPrinter(language.English)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(title string) {
	fmt.Println(title)
	fmt.Println(rule)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func printShaftReport(s *shaft.Shaft, f *shaft.ForceResult, st *shaft.StressResult) {
	printHeader("SHAFT ANALYSIS - " + s.Label)

	printSection("GEOMETRY:")
	w := newTable()
	fmt.Fprintf(w, "  Length:\t%.1f mm\n", s.Length*1000)
	fmt.Fprintf(w, "  Samples:\t%d\n", s.Samples())
	fmt.Fprintf(w, "  Bearings (correction points):\t%.1f mm, %.1f mm\n", s.CorrectionPoints[0]*1000, s.CorrectionPoints[1]*1000)
	w.Flush()
	fmt.Println(diagram.DrawShaftProfile(starts(s), diameters(s), s.Length))

	printSection("MATERIAL:")
	w = newTable()
	printer.Fprintf(w, "  Elasticity module (E):\t%.0f MPa\n", s.Material.ElasticityModule/1e6)
	printer.Fprintf(w, "  Yield stress (Sy):\t%.0f MPa\n", s.Material.YieldStress/1e6)
	printer.Fprintf(w, "  Ultimate stress (Sut):\t%.0f MPa\n", s.Material.UltimateStress/1e6)
	w.Flush()
	fmt.Println()

	printSection("LOADS:")
	w = newTable()
	fmt.Fprintf(w, "  z (mm)\tFx (N)\tFy (N)\tFz (N)\n")
	fmt.Fprintf(w, "  ──────\t──────\t──────\t──────\n")
	for _, p := range s.Loads.All() {
		printer.Fprintf(w, "  %.1f\t%.2f\t%.2f\t%.2f\n", p.Position*1000, p.Force[0], p.Force[1], p.Force[2])
	}
	w.Flush()
	w = newTable()
	printer.Fprintf(w, "  Torque:\t%.2f N·m\n", s.Torque)
	w.Flush()
	fmt.Println()

	printSection("DEFLECTION:")
	y, yAt := f.MaxDeflection()
	th, thAt := f.MaxSlope()
	w = newTable()
	fmt.Fprintf(w, "  Max deflection:\t%.4e m at z = %.1f mm\n", y, yAt*1000)
	fmt.Fprintf(w, "  Max slope:\t%.4e rad at z = %.1f mm\n", th, thAt*1000)
	fmt.Fprintf(w, "  Correction angles (x, y, z):\t%.3e, %.3e, %.3e rad\n", f.CorrectionAngle[0], f.CorrectionAngle[1], f.CorrectionAngle[2])
	w.Flush()
	fmt.Println()

	nEst, estAt := st.MinStatic()
	nFad, fadAt := st.MinFatigue()
	lines := []string{
		fmt.Sprintf("Min static safety  N_est = %.3f at z = %.1f mm", nEst, estAt*1000),
		fmt.Sprintf("Min fatigue safety N_fad = %.3f at z = %.1f mm", nFad, fadAt*1000),
	}
	fmt.Print(diagram.DrawSummaryBox("SAFETY FACTORS", lines))
	fmt.Println()
}

func printShaftCharts(s *shaft.Shaft, f *shaft.ForceResult, st *shaft.StressResult) {
	fmt.Println(diagram.DrawASCIIChart(s.Label+": moment M (N·m)", f.Moment.Total, 10, 60))
	fmt.Println(diagram.DrawASCIIChart(s.Label+": corrected deflection y (m)", f.CorrectedDeflection.Total, 10, 60))
	fmt.Println(diagram.DrawASCIIChart(s.Label+": static safety N_est", st.StaticSafety, 10, 60))
}

func starts(s *shaft.Shaft) []float64 {
	var out []float64
	for _, sec := range s.Profile.Sections() {
		out = append(out, sec.Start)
	}
	return out
}

func diameters(s *shaft.Shaft) []float64 {
	var out []float64
	for _, sec := range s.Profile.Sections() {
		out = append(out, sec.Diameter)
	}
	return out
}

func exportDiagrams(dir, format string, reports ...export.ShaftReport) error {
	for _, r := range reports {
		files, err := diagram.ExportShaftDiagrams(r.Label, dir, format, r.Forces, r.Stress)
		if err != nil {
			return fmt.Errorf("exporting diagrams: %w", err)
		}
		slog.Info("diagrams exported", "shaft", r.Label, "dir", dir, "files", len(files))
	}
	return nil
}

func writeReports(xlsxPath, pdfPath, title string, reports ...export.ShaftReport) error {
	if xlsxPath != "" {
		if err := export.WriteWorkbook(xlsxPath, reports...); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		slog.Info("workbook written", "path", xlsxPath, "size", fileSize(xlsxPath))
	}
	if pdfPath != "" {
		if err := export.WritePDFReport(pdfPath, title, reports...); err != nil {
			return fmt.Errorf("writing pdf report: %w", err)
		}
		slog.Info("pdf report written", "path", pdfPath, "size", fileSize(pdfPath))
	}
	return nil
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "unknown"
	}
	return humanize.Bytes(uint64(info.Size()))
}
