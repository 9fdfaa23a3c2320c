package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gored/internal/material"
	"github.com/alexiusacademia/gored/internal/shaft"
)

func calculatedShaft(t *testing.T) (*shaft.ForceResult, *shaft.StressResult) {
	t.Helper()
	s, err := shaft.New(shaft.Config{
		Label:      "Eixo 1",
		Length:     0.2,
		Resolution: 100,
		Material:   material.Steel1045(),
		Sections:   []shaft.Section{{Start: 0, Diameter: 0.02}, {Start: 0.1, Diameter: 0.025}},
		Loads: []shaft.PointLoad{
			{Position: 0.02, Force: shaft.Vector{0, 500, 0}},
			{Position: 0.1, Force: shaft.Vector{300, -1000, 0}},
			{Position: 0.18, Force: shaft.Vector{-300, 500, 0}},
		},
		Torque:           20,
		CorrectionPoints: [2]float64{0.02, 0.18},
		StressFocus:      []shaft.StressFocus{shaft.Keyway(0.09, 0.11)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := s.CalculateActingForces()
	st, err := s.CalculateStress()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f, st
}

func TestDrawSummaryBoxAligned(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"Min N_est: 2.31 at 97.0 mm", "Ø"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d", len(lines))
	}
	want := utf8.RuneCountInString(lines[0])
	for i, l := range lines {
		if got := utf8.RuneCountInString(l); got != want {
			t.Errorf("line %d: expected width %d, got %d", i, want, got)
		}
	}
	if !strings.Contains(box, "Min N_est") {
		t.Error("Expected body line in box")
	}
}

func TestDrawASCIIChart(t *testing.T) {
	out := DrawASCIIChart("Moment (N·m)", []float64{0, 1, 4, 9, math.Inf(1), 16}, 5, 0)
	if !strings.Contains(out, "Moment (N·m)") {
		t.Errorf("Expected caption in chart, got:\n%s", out)
	}
	if got := DrawASCIIChart("empty", []float64{math.NaN(), math.Inf(-1)}, 5, 0); !strings.Contains(got, "no finite values") {
		t.Errorf("Expected placeholder for non-finite series, got %q", got)
	}
}

func TestDrawShaftProfile(t *testing.T) {
	out := DrawShaftProfile([]float64{0, 0.02, 0.14}, []float64{0.017, 0.02, 0.023}, 0.16)
	if n := strings.Count(out, "Ø"); n != 3 {
		t.Errorf("Expected 3 section rows, got %d", n)
	}
	if DrawShaftProfile(nil, nil, 1) != "" {
		t.Error("Expected empty sketch without sections")
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"png", "SVG", "pdf"} {
		if !ValidFormat(f) {
			t.Errorf("Expected %s to be valid", f)
		}
	}
	if ValidFormat("bmp") {
		t.Error("Expected bmp to be rejected")
	}
}

func TestShaftChartsWithoutStress(t *testing.T) {
	f, _ := calculatedShaft(t)
	charts := ShaftCharts("Eixo 1", f, nil)
	if _, ok := charts["N-static"]; ok {
		t.Error("Expected no safety charts without stress")
	}
	m := charts["M"]
	if len(m.Series) != 1 || m.Series[0].Y[10] != f.Moment.Total[10]*1000 {
		t.Error("Expected moment chart in N·mm")
	}
	if m.Series[0].X[10] != f.Z[10]*1000 {
		t.Error("Expected positions in mm")
	}
	if f.Z[10] != 0.1 {
		t.Errorf("Expected force result left in m, got z=%g", f.Z[10])
	}
}

func TestExportShaftDiagrams(t *testing.T) {
	f, st := calculatedShaft(t)
	dir := filepath.Join(t.TempDir(), "output")

	files, err := ExportShaftDiagrams("Eixo 1", dir, "svg", f, st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != len(chartOrder) {
		t.Errorf("Expected %d files, got %d", len(chartOrder), len(files))
	}
	for _, name := range files {
		info, err := os.Stat(name)
		if err != nil {
			t.Fatalf("Expected %s to exist: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("Expected %s to be non-empty", name)
		}
	}
	if want := filepath.Join(dir, "Eixo 1_Vy.svg"); !contains(files, want) {
		t.Errorf("Expected %s among %v", want, files)
	}

	if _, err := ExportShaftDiagrams("Eixo 1", dir, "bmp", f, st); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestExportChartSkipsNaN(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nan.png")
	c := Chart{
		Title:  "gaps",
		Series: []Series{{X: []float64{0, 1, 2}, Y: []float64{1, math.NaN(), 3}}},
	}
	if err := ExportChart(c, name); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(name); err != nil {
		t.Errorf("Expected chart file: %v", err)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
