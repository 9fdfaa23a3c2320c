package material

import (
	"math"
	"testing"
)

func TestNewDerivesStiffnessModule(t *testing.T) {
	m := New(200e9, 0.25, 1, 2, 3, 4)
	if m.StiffnessModule != 80e9 {
		t.Errorf("expected G=80e9, got %g", m.StiffnessModule)
	}
}

func TestNeuberConstantsScaled(t *testing.T) {
	m := Steel1045()
	want := 0.062 * math.Sqrt(25.4)
	if m.NeuberConstant != want {
		t.Errorf("expected %g, got %g", want, m.NeuberConstant)
	}

	m = New(1, 0, 1, 1, 1, 1, WithNeuberConstants(0.1, 0.2))
	if m.NeuberConstantShear != 0.2*math.Sqrt(25.4) {
		t.Errorf("expected overridden shear constant, got %g", m.NeuberConstantShear)
	}
}

func TestDefinitionPresetOverride(t *testing.T) {
	m, err := Definition{Preset: "steel1045", YieldStress: 600e6}.Material()
	if err != nil {
		t.Fatal(err)
	}
	if m.YieldStress != 600e6 {
		t.Errorf("expected overridden yield, got %g", m.YieldStress)
	}
	if m.UltimateStress != 690e6 {
		t.Errorf("expected preset ultimate, got %g", m.UltimateStress)
	}
}

func TestDefinitionErrors(t *testing.T) {
	if _, err := (Definition{Preset: "unobtainium"}).Material(); err == nil {
		t.Errorf("expected unknown preset error")
	}
	if _, err := (Definition{}).Material(); err == nil {
		t.Errorf("expected error for empty material")
	}
}
