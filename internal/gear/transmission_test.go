package gear

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gored/internal/material"
	"gonum.org/v1/gonum/floats/scalar"
)

func referencePair() *Transmission {
	steel := material.Steel1045()
	pinion := New(19, 20, 0.003, 14, 0.24, steel)
	crown := New(57, 20, 0.003, 14, 0.28, steel)
	return NewTransmission(pinion, crown, 365*(2.0/7)*8*60*60, 0.0975)
}

func TestNewGear(t *testing.T) {
	g := New(19, 20, 0.003, 14, 0.24, material.Steel1045())
	if !scalar.EqualWithinAbs(g.PitchDiameter, 0.057, 1e-15) {
		t.Errorf("expected d=0.057, got %g", g.PitchDiameter)
	}
	if !scalar.EqualWithinAbs(g.Thickness, 0.042, 1e-15) {
		t.Errorf("expected F=0.042, got %g", g.Thickness)
	}
	if !scalar.EqualWithinAbs(g.PressureAngle, math.Pi/9, 1e-15) {
		t.Errorf("expected φ=π/9, got %g", g.PressureAngle)
	}
}

func TestCalculateForces(t *testing.T) {
	tr := referencePair()
	power, rpm := 2000.0, 1000.0
	f := tr.CalculateForces(power, rpm, 0.96)

	w1 := rpm * math.Pi / 30
	if f.W1 != w1 {
		t.Errorf("expected w1=%g, got %g", w1, f.W1)
	}
	if !scalar.EqualWithinAbsOrRel(f.W2, w1/3, 1e-12, 1e-12) {
		t.Errorf("expected w2=w1/3, got %g", f.W2)
	}

	eff := 1 - 0.5*(57.0-19.0)/(19.0*57.0)
	if !scalar.EqualWithinAbsOrRel(f.GearingEfficiency, eff, 1e-15, 1e-15) {
		t.Errorf("expected efficiency %g, got %g", eff, f.GearingEfficiency)
	}
	if !scalar.EqualWithinAbsOrRel(f.P2, 2000*0.96*eff, 1e-12, 1e-12) {
		t.Errorf("expected P2=%g, got %g", 2000*0.96*eff, f.P2)
	}

	if !scalar.EqualWithinAbsOrRel(f.Ft1, 2*f.T1/0.057, 1e-12, 1e-12) {
		t.Errorf("expected Ft1=2T1/d1, got %g", f.Ft1)
	}
	if !scalar.EqualWithinAbsOrRel(f.Fr1, f.Ft1*math.Tan(math.Pi/9), 1e-9, 1e-12) {
		t.Errorf("expected Fr1=Ft1·tanφ, got %g", f.Fr1)
	}
	if tr.Stage() != StageForcesComputed {
		t.Errorf("expected stage %s, got %s", StageForcesComputed, tr.Stage())
	}
}

func TestCalculateStressRequiresForces(t *testing.T) {
	tr := referencePair()
	if _, err := tr.CalculateStress(); !errors.Is(err, ErrSequence) {
		t.Fatalf("expected ErrSequence, got %v", err)
	}
	if _, err := tr.Forces(); !errors.Is(err, ErrSequence) {
		t.Errorf("expected ErrSequence from Forces, got %v", err)
	}
}

func TestCalculateStress(t *testing.T) {
	tr := referencePair()
	f := tr.CalculateForces(2937*0.96*0.96, 2335.0/2, 0.96)

	s, err := tr.CalculateStress()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	k := tr.Factors.BendingTotal()
	want := f.Ft1 * k / (tr.Gear1.Thickness * tr.Gear1.Module * tr.Gear1.J * s.Kv)
	if s.SigmaB1 != want {
		t.Errorf("expected σb1=%g, got %g", want, s.SigmaB1)
	}

	for name, v := range map[string]float64{
		"σb1": s.SigmaB1, "σb2": s.SigmaB2, "σc1": s.SigmaC1, "σc2": s.SigmaC2,
		"CSb1": s.CSb1, "CSb2": s.CSb2, "CSc1": s.CSc1, "CSc2": s.CSc2,
	} {
		if !(v > 0) || math.IsInf(v, 0) {
			t.Errorf("expected finite positive %s, got %g", name, v)
		}
	}

	// Pinion turns three times faster, so its life factor is lower.
	if !(s.N1 > s.N2) {
		t.Errorf("expected N1 > N2, got %g <= %g", s.N1, s.N2)
	}

	got, err := tr.Stress()
	if err != nil || got != s {
		t.Errorf("expected stored stress result, got %v (%v)", got, err)
	}
}

func TestRecalculateForcesResetsStress(t *testing.T) {
	tr := referencePair()
	tr.CalculateForces(1000, 1000, 1)
	if _, err := tr.CalculateStress(); err != nil {
		t.Fatal(err)
	}
	tr.CalculateForces(2000, 1000, 1)
	if _, err := tr.Stress(); !errors.Is(err, ErrSequence) {
		t.Errorf("expected stale stress to be rejected, got %v", err)
	}
}
