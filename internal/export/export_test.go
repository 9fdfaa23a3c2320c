package export

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gored/internal/material"
	"github.com/alexiusacademia/gored/internal/shaft"
	"github.com/xuri/excelize/v2"
)

func report(t *testing.T, label string, withStress bool) ShaftReport {
	t.Helper()
	s, err := shaft.New(shaft.Config{
		Label:            label,
		Length:           0.16,
		Resolution:       100,
		Material:         material.Steel1045(),
		Sections:         []shaft.Section{{Start: 0, Diameter: 0.017}, {Start: 0.02, Diameter: 0.02}},
		Loads:            []shaft.PointLoad{{Position: 0.05, Force: shaft.Vector{0, -200, 0}}},
		Torque:           15,
		CorrectionPoints: [2]float64{0.01, 0.13},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := ShaftReport{Label: label, Forces: s.CalculateActingForces()}
	if withStress {
		if r.Stress, err = s.CalculateStress(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return r
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shafts.xlsx")
	a := report(t, "Eixo 1", true)
	b := report(t, "Eixo/2", false)
	if err := WriteWorkbook(path, a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Eixo 1" || sheets[1] != "Eixo_2" {
		t.Fatalf("Expected sheets [Eixo 1 Eixo_2], got %v", sheets)
	}

	rows, err := f.GetRows("Eixo 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(a.Forces.Z)+1 {
		t.Errorf("Expected %d rows, got %d", len(a.Forces.Z)+1, len(rows))
	}
	if got := len(rows[0]); got != len(forceColumns)+len(stressColumns) {
		t.Errorf("Expected %d columns, got %d", len(forceColumns)+len(stressColumns), got)
	}
	if rows[0][0] != "z (m)" {
		t.Errorf("Expected z header, got %q", rows[0][0])
	}
	headers := make(map[string]bool, len(rows[0]))
	for _, h := range rows[0] {
		headers[h] = true
	}
	for _, h := range []string{"theta_raw_x (rad)", "y_raw_z (m)", "theta_z (rad)", "y_z (m)", "N_fad"} {
		if !headers[h] {
			t.Errorf("Expected a %q column, got %v", h, rows[0])
		}
	}

	rows, _ = f.GetRows("Eixo_2")
	if got := len(rows[0]); got != len(forceColumns) {
		t.Errorf("Expected only force columns without stress, got %d", got)
	}
}

func TestWriteWorkbookErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.xlsx")
	if err := WriteWorkbook(path); err == nil {
		t.Error("Expected error without shafts")
	}
	if err := WriteWorkbook(path, ShaftReport{Label: "empty"}); err == nil {
		t.Error("Expected error without force results")
	}
}

func TestCellValue(t *testing.T) {
	if v := cellValue(math.NaN()); v != "NaN" {
		t.Errorf("Expected NaN text, got %v", v)
	}
	if v := cellValue(math.Inf(1)); v != "+Inf" {
		t.Errorf("Expected +Inf text, got %v", v)
	}
	if v := cellValue(1.5); v != 1.5 {
		t.Errorf("Expected 1.5, got %v", v)
	}
}

func TestSheetName(t *testing.T) {
	if got := sheetName("", 2); got != "Shaft 3" {
		t.Errorf("Expected Shaft 3, got %q", got)
	}
	long := "a very long shaft label that exceeds the limit"
	if got := sheetName(long, 0); len(got) != 31 {
		t.Errorf("Expected 31 characters, got %d", len(got))
	}
}

func TestWritePDFReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := WritePDFReport(path, "Reducer shafts", report(t, "Eixo 1", true), report(t, "Eixo 2", false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Error("Expected a PDF document")
	}
}

func TestSampleIndexes(t *testing.T) {
	idx := sampleIndexes(161, 25)
	if len(idx) != 25 || idx[0] != 0 || idx[24] != 160 {
		t.Errorf("Expected 25 indexes from 0 to 160, got %v", idx)
	}
	if got := sampleIndexes(3, 25); len(got) != 3 {
		t.Errorf("Expected all 3 indexes, got %v", got)
	}
}
