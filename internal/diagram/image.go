package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gored/internal/shaft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is one named curve of a chart.
type Series struct {
	Name  string
	X, Y  []float64
	Color color.Color
}

// Chart describes a line chart along the shaft.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series

	// YMin and YMax clamp the value axis when YMax > YMin.
	YMin, YMax float64
}

var (
	blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	yellow = color.RGBA{R: 230, G: 190, B: 0, A: 255}
	black  = color.Black
)

// Formats lists the image formats ExportChart can write.
var Formats = []string{"png", "svg", "pdf", "jpg", "eps", "tif"}

// ValidFormat reports whether format names a supported image format.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// ExportChart renders the chart to filename. The format follows the extension.
// Samples that are NaN or infinite are left out of the curve.
func ExportChart(c Chart, filename string) error {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	for _, s := range c.Series {
		pts := finitePoints(s.X, s.Y)
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		if s.Color != nil {
			line.LineStyle.Color = s.Color
		}
		p.Add(line)
		if s.Name != "" && len(c.Series) > 1 {
			p.Legend.Add(s.Name, line)
		}
	}
	if c.YMax > c.YMin {
		p.Y.Min = c.YMin
		p.Y.Max = c.YMax
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}

func finitePoints(x, y []float64) plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	pts := make(plotter.XYs, 0, n)
	for k := 0; k < n; k++ {
		if math.IsNaN(y[k]) || math.IsInf(y[k], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[k], Y: y[k]})
	}
	return pts
}

// ShaftCharts builds the diagrams of a calculated shaft, keyed by file
// suffix. Positions are plotted in mm and moments in N·mm. The stress charts
// are included only when stress is not nil.
func ShaftCharts(label string, f *shaft.ForceResult, stress *shaft.StressResult) map[string]Chart {
	const xLabel = "Position z (mm)"
	milli := func(v []float64) []float64 {
		return floats.ScaleTo(make([]float64, len(v)), 1000, v)
	}
	x := milli(f.Z)
	one := func(title, yLabel string, y []float64) Chart {
		return Chart{
			Title:  fmt.Sprintf("%s: %s", label, title),
			XLabel: xLabel,
			YLabel: yLabel,
			Series: []Series{{X: x, Y: y, Color: blue}},
		}
	}
	axes := func(title, yLabel, prefix string, c shaft.Components, total string) Chart {
		return Chart{
			Title:  fmt.Sprintf("%s: %s", label, title),
			XLabel: xLabel,
			YLabel: yLabel,
			Series: []Series{
				{Name: total, X: x, Y: c.Total, Color: blue},
				{Name: prefix + "_x", X: x, Y: c.X, Color: yellow},
				{Name: prefix + "_y", X: x, Y: c.Y, Color: red},
				{Name: prefix + "_z", X: x, Y: c.Z, Color: black},
			},
		}
	}

	charts := map[string]Chart{
		"Geometry": one("Geometry", "Diameter (m)", f.Diameter),
		"Vx":       one("Shear in plane z-x", "V (N)", f.Shear.X),
		"Vy":       one("Shear in plane z-y", "V (N)", f.Shear.Y),
		"Vz":       one("Shear in plane z-z", "V (N)", f.Shear.Z),
		"V":        one("Shear magnitude", "V (N)", f.Shear.Total),
		"Mx":       one("Moment about y", "M (N·mm)", milli(f.Moment.X)),
		"My":       one("Moment about x", "M (N·mm)", milli(f.Moment.Y)),
		"Mz":       one("Moment about z", "M (N·mm)", milli(f.Moment.Z)),
		"M":        one("Moment magnitude", "M (N·mm)", milli(f.Moment.Total)),

		"Def_uncorrected":     axes("Uncorrected deflection", "y (m)", "def", f.Deflection, "def_tot"),
		"Def_corrected":       axes("Corrected deflection", "y (m)", "def_cor", f.CorrectedDeflection, "def_tot_cor"),
		"Def_ang_uncorrected": axes("Uncorrected slope", "θ (rad)", "def_ang", f.Slope, "def_ang"),
		"Def_ang_corrected":   axes("Corrected slope", "θ (rad)", "def_ang_cor", f.CorrectedSlope, "def_ang_cor"),
	}
	geo := charts["Geometry"]
	geo.YMin, geo.YMax = 0, floats.Max(f.Diameter)*1.1
	charts["Geometry"] = geo

	if stress != nil {
		charts["N-static"] = one("Static safety factor", "N_est", stress.StaticSafety)
		fad := one("Fatigue safety factor", "N_fad", stress.FatigueSafety)
		fad.YMin, fad.YMax = 0, 50
		charts["N-fatigue"] = fad
	}
	return charts
}

// ExportShaftDiagrams writes every chart of ShaftCharts into dir as
// "<label>_<suffix>.<format>" and returns the written paths.
func ExportShaftDiagrams(label, dir, format string, f *shaft.ForceResult, stress *shaft.StressResult) ([]string, error) {
	if !ValidFormat(format) {
		return nil, fmt.Errorf("unsupported diagram format %q (use one of %s)", format, strings.Join(Formats, ", "))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	charts := ShaftCharts(label, f, stress)
	var written []string
	for _, suffix := range chartOrder {
		c, ok := charts[suffix]
		if !ok {
			continue
		}
		filename := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", label, suffix, strings.ToLower(format)))
		if err := ExportChart(c, filename); err != nil {
			return written, fmt.Errorf("export %s: %w", filename, err)
		}
		written = append(written, filename)
	}
	return written, nil
}

var chartOrder = []string{
	"Geometry", "Vz", "Vy", "Vx", "V", "Mx", "My", "Mz", "M",
	"Def_uncorrected", "Def_corrected", "Def_ang_uncorrected", "Def_ang_corrected",
	"N-static", "N-fatigue",
}
