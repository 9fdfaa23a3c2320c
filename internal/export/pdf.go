package export

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// tableRows is the number of evenly spaced samples listed per shaft.
const tableRows = 25

// WritePDFReport writes a printable summary of every shaft with a sampled
// table of its diagrams.
func WritePDFReport(path, title string, reports ...ShaftReport) error {
	if len(reports) == 0 {
		return fmt.Errorf("no shafts to export")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	for _, r := range reports {
		if r.Forces == nil {
			return fmt.Errorf("shaft %q has no force results", r.Label)
		}
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, title)
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Shaft: %s", r.Label))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Summary")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, summary(r), "", "L", false)
		pdf.Ln(4)

		writeTable(pdf, r)
	}

	return pdf.OutputFileAndClose(path)
}

func summary(r ShaftReport) string {
	y, yAt := r.Forces.MaxDeflection()
	th, thAt := r.Forces.MaxSlope()
	s := fmt.Sprintf("Max deflection: %.4g m at z = %.1f mm\nMax slope: %.4g rad at z = %.1f mm\n",
		y, yAt*1000, th, thAt*1000)
	if r.Stress != nil {
		ne, neAt := r.Stress.MinStatic()
		nf, nfAt := r.Stress.MinFatigue()
		s += fmt.Sprintf("Min static safety N_est: %.3f at z = %.1f mm\nMin fatigue safety N_fad: %.3f at z = %.1f mm\n",
			ne, neAt*1000, nf, nfAt*1000)
	}
	return s
}

func writeTable(pdf *gofpdf.Fpdf, r ShaftReport) {
	headers := []string{"z (mm)", "d (mm)", "V (N)", "M (N.m)", "y (m)"}
	if r.Stress != nil {
		headers = append(headers, "N_est", "N_fad")
	}
	w := 190.0 / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 9)
	for _, h := range headers {
		pdf.CellFormat(w, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	f := r.Forces
	for _, k := range sampleIndexes(len(f.Z), tableRows) {
		cells := []string{
			fmt.Sprintf("%.1f", f.Z[k]*1000),
			fmt.Sprintf("%.1f", f.Diameter[k]*1000),
			fmt.Sprintf("%.2f", f.Shear.Total[k]),
			fmt.Sprintf("%.3f", f.Moment.Total[k]),
			fmt.Sprintf("%.3e", f.CorrectedDeflection.Total[k]),
		}
		if r.Stress != nil {
			cells = append(cells,
				fmt.Sprintf("%.3f", r.Stress.StaticSafety[k]),
				fmt.Sprintf("%.3f", r.Stress.FatigueSafety[k]))
		}
		for _, c := range cells {
			pdf.CellFormat(w, 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// sampleIndexes picks up to rows evenly spaced indexes of n samples,
// always including the first and the last.
func sampleIndexes(n, rows int) []int {
	if n <= rows {
		idx := make([]int, n)
		for k := range idx {
			idx[k] = k
		}
		return idx
	}
	idx := make([]int, rows)
	for i := range idx {
		idx[i] = i * (n - 1) / (rows - 1)
	}
	return idx
}
