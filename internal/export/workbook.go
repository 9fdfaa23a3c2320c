package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gored/internal/shaft"
	"github.com/xuri/excelize/v2"
)

// ShaftReport is a calculated shaft ready to be written out.
type ShaftReport struct {
	Label  string
	Forces *shaft.ForceResult
	Stress *shaft.StressResult
}

type column struct {
	header string
	values func(r ShaftReport) []float64
}

var forceColumns = []column{
	{"z (m)", func(r ShaftReport) []float64 { return r.Forces.Z }},
	{"d (m)", func(r ShaftReport) []float64 { return r.Forces.Diameter }},
	{"Vx (N)", func(r ShaftReport) []float64 { return r.Forces.Shear.X }},
	{"Vy (N)", func(r ShaftReport) []float64 { return r.Forces.Shear.Y }},
	{"Vz (N)", func(r ShaftReport) []float64 { return r.Forces.Shear.Z }},
	{"V (N)", func(r ShaftReport) []float64 { return r.Forces.Shear.Total }},
	{"Mx (N.m)", func(r ShaftReport) []float64 { return r.Forces.Moment.X }},
	{"My (N.m)", func(r ShaftReport) []float64 { return r.Forces.Moment.Y }},
	{"Mz (N.m)", func(r ShaftReport) []float64 { return r.Forces.Moment.Z }},
	{"M (N.m)", func(r ShaftReport) []float64 { return r.Forces.Moment.Total }},
	// Uncorrected deflection line.
	{"theta_raw_x (rad)", func(r ShaftReport) []float64 { return r.Forces.Slope.X }},
	{"theta_raw_y (rad)", func(r ShaftReport) []float64 { return r.Forces.Slope.Y }},
	{"theta_raw_z (rad)", func(r ShaftReport) []float64 { return r.Forces.Slope.Z }},
	{"theta_raw (rad)", func(r ShaftReport) []float64 { return r.Forces.Slope.Total }},
	{"y_raw_x (m)", func(r ShaftReport) []float64 { return r.Forces.Deflection.X }},
	{"y_raw_y (m)", func(r ShaftReport) []float64 { return r.Forces.Deflection.Y }},
	{"y_raw_z (m)", func(r ShaftReport) []float64 { return r.Forces.Deflection.Z }},
	{"y_raw (m)", func(r ShaftReport) []float64 { return r.Forces.Deflection.Total }},

	{"theta_x (rad)", func(r ShaftReport) []float64 { return r.Forces.CorrectedSlope.X }},
	{"theta_y (rad)", func(r ShaftReport) []float64 { return r.Forces.CorrectedSlope.Y }},
	{"theta_z (rad)", func(r ShaftReport) []float64 { return r.Forces.CorrectedSlope.Z }},
	{"theta (rad)", func(r ShaftReport) []float64 { return r.Forces.CorrectedSlope.Total }},
	{"y_x (m)", func(r ShaftReport) []float64 { return r.Forces.CorrectedDeflection.X }},
	{"y_y (m)", func(r ShaftReport) []float64 { return r.Forces.CorrectedDeflection.Y }},
	{"y_z (m)", func(r ShaftReport) []float64 { return r.Forces.CorrectedDeflection.Z }},
	{"y (m)", func(r ShaftReport) []float64 { return r.Forces.CorrectedDeflection.Total }},
}

var stressColumns = []column{
	{"Kf", func(r ShaftReport) []float64 { return r.Stress.Kf }},
	{"Kfs", func(r ShaftReport) []float64 { return r.Stress.Kfs }},
	{"sigma (Pa)", func(r ShaftReport) []float64 { return r.Stress.Sigma.Total }},
	{"tau (Pa)", func(r ShaftReport) []float64 { return r.Stress.TauXY }},
	{"sigma_eq (Pa)", func(r ShaftReport) []float64 { return r.Stress.SigmaEq }},
	{"N_est", func(r ShaftReport) []float64 { return r.Stress.StaticSafety }},
	{"sigma_a (Pa)", func(r ShaftReport) []float64 { return r.Stress.Alternating }},
	{"sigma_m (Pa)", func(r ShaftReport) []float64 { return r.Stress.Mean }},
	{"Se (Pa)", func(r ShaftReport) []float64 { return r.Stress.Endurance }},
	{"N_fad", func(r ShaftReport) []float64 { return r.Stress.FatigueSafety }},
}

// WriteWorkbook saves one sheet of per-sample results for every shaft.
func WriteWorkbook(path string, reports ...ShaftReport) error {
	if len(reports) == 0 {
		return fmt.Errorf("no shafts to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, r := range reports {
		if r.Forces == nil {
			return fmt.Errorf("shaft %q has no force results", r.Label)
		}
		sheet := sheetName(r.Label, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeSheet(f, sheet, r); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, r ShaftReport) error {
	cols := append([]column(nil), forceColumns...)
	if r.Stress != nil {
		cols = append(cols, stressColumns...)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(cols))
	data := make([][]float64, len(cols))
	for c, col := range cols {
		header[c] = col.header
		data[c] = col.values(r)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for k := range r.Forces.Z {
		row := make([]interface{}, len(cols))
		for c := range cols {
			row[c] = cellValue(data[c][k])
		}
		cell, err := excelize.CoordinatesToCellName(1, k+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// cellValue keeps non-finite samples readable; a NaN number corrupts the sheet.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return v
}

func sheetName(label string, i int) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, label)
	if name == "" {
		name = fmt.Sprintf("Shaft %d", i+1)
	}
	if len([]rune(name)) > 31 {
		name = string([]rune(name)[:31])
	}
	return name
}
