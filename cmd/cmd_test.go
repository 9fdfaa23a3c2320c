package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestShaftAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "eixo4.xlsx")
	pdf := filepath.Join(dir, "eixo4.pdf")

	if err := run(t, "shaft", "analyze", "-f", "testdata/shaft.json", "--xlsx", xlsx, "--pdf", pdf); err != nil {
		t.Fatalf("shaft analyze: %v", err)
	}
	for _, name := range []string{xlsx, pdf} {
		if _, err := os.Stat(name); err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
		}
	}
}

func TestShaftAnalyzeMissingFile(t *testing.T) {
	if err := run(t, "shaft", "analyze", "-f", "testdata/none.json", "--xlsx", "", "--pdf", ""); err == nil {
		t.Error("Expected error for missing design file")
	}
}

func TestReducerAnalyzeCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plots")
	if err := run(t, "reducer", "analyze", "-f", "testdata/reducer.json", "-o", out, "--format", "svg"); err != nil {
		t.Fatalf("reducer analyze: %v", err)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("reading %s: %v", out, err)
	}
	if len(entries) == 0 {
		t.Error("Expected exported diagrams")
	}
}

func TestGearAndBeltCommands(t *testing.T) {
	if err := run(t, "gear", "analyze", "--z1", "19", "--z2", "57", "--module", "0.003", "--power", "2706", "--rpm", "1167.5"); err != nil {
		t.Errorf("gear analyze: %v", err)
	}
	if err := run(t, "belt", "analyze", "--d1", "0.118", "--d2", "0.236", "--rpm", "2335", "--power", "2937"); err != nil {
		t.Errorf("belt analyze: %v", err)
	}
	if err := run(t, "belt", "analyze", "--d1", "0", "--d2", "0.236", "--rpm", "2335", "--power", "2937"); err == nil {
		t.Error("Expected error for zero pulley diameter")
	}
}
