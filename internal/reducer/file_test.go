package reducer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSystemKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reducer.json")
	if err := os.WriteFile(path, []byte(`{"input_power": 1500}`), 0644); err != nil {
		t.Fatal(err)
	}
	sys, err := LoadSystem(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultSystem()
	if sys.InputPower != 1500 {
		t.Errorf("Expected 1500 W, got %v", sys.InputPower)
	}
	if sys.InputVelocity != def.InputVelocity || sys.SecondsOfUse != def.SecondsOfUse {
		t.Errorf("Expected defaults to survive, got %+v", sys)
	}
}

func TestLoadSystemErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadSystem(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"input_power": "lots"}`), 0644)
	if _, err := LoadSystem(bad); err == nil {
		t.Error("Expected parse error")
	}

	zero := filepath.Join(dir, "zero.json")
	os.WriteFile(zero, []byte(`{"belt_efficiency": 1.2}`), 0644)
	if _, err := LoadSystem(zero); err == nil {
		t.Error("Expected validation error")
	}
}

func TestDefaultSystemValid(t *testing.T) {
	if err := DefaultSystem().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
