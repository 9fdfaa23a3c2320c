package belt

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func referenceDrive() *Transmission {
	p1 := NewPulley(0.118, 2335)
	p2 := NewPulley(0.236, 2335.0/2)
	return NewTransmission(p1, p2, 2937, 0.195)
}

func TestNewPulley(t *testing.T) {
	p := NewPulley(0.1, 30)
	if !scalar.EqualWithinRel(p.AngularVelocity, math.Pi, 1e-15) {
		t.Errorf("expected π rad/s, got %g", p.AngularVelocity)
	}
}

func TestStepsMustRunInOrder(t *testing.T) {
	tr := referenceDrive()
	if err := tr.SetConstants(); !errors.Is(err, ErrSequence) {
		t.Errorf("expected ErrSequence for constants, got %v", err)
	}
	if err := tr.CalculateForces(); !errors.Is(err, ErrSequence) {
		t.Errorf("expected ErrSequence for forces, got %v", err)
	}
	if err := tr.CalculateDurability(); !errors.Is(err, ErrSequence) {
		t.Errorf("expected ErrSequence for durability, got %v", err)
	}
	if tr.Stage() != StageUninitialized {
		t.Errorf("expected stage %s, got %s", StageUninitialized, tr.Stage())
	}

	if err := tr.CalculateGeometry(); err != nil {
		t.Fatal(err)
	}
	if err := tr.CalculateForces(); !errors.Is(err, ErrSequence) {
		t.Errorf("expected forces to require constants, got %v", err)
	}
}

func TestGeometrySelectsCatalogLength(t *testing.T) {
	tr := referenceDrive()
	if err := tr.CalculateGeometry(); err != nil {
		t.Fatal(err)
	}
	r := tr.Result()
	if !(r.ComputedLength > 1.19 && r.ComputedLength < 1.29) {
		t.Fatalf("expected Ld1 between 1.19 and 1.29 m, got %g", r.ComputedLength)
	}
	if r.BeltLength != 1.29 {
		t.Errorf("expected 1.29 m belt, got %g", r.BeltLength)
	}
	if r.Ratio != 2 {
		t.Errorf("expected ratio 2, got %g", r.Ratio)
	}

	// Belt length from center distance must close the loop.
	D, d, c := 0.236, 0.118, r.CenterDistance
	l := 2*c + math.Pi*(D+d)/2 + (D-d)*(D-d)/(4*c)
	if !scalar.EqualWithinAbs(l, r.BeltLength, 1e-4) {
		t.Errorf("expected belt length %g from center distance, got %g", r.BeltLength, l)
	}
}

func TestGeometryNoCatalogFit(t *testing.T) {
	tr := referenceDrive()
	tr.Catalog = []float64{0.5, 0.8}
	if err := tr.CalculateGeometry(); !errors.Is(err, ErrNoCatalogLength) {
		t.Errorf("expected ErrNoCatalogLength, got %v", err)
	}

	tr.BeltLength = 1.5
	if err := tr.CalculateGeometry(); err != nil {
		t.Errorf("expected fixed length to bypass catalog, got %v", err)
	}
}

func TestCalculateTransmission(t *testing.T) {
	tr := referenceDrive()
	r, err := tr.CalculateTransmission()
	if err != nil {
		t.Fatal(err)
	}
	if tr.Stage() != StageDurabilityComputed {
		t.Errorf("expected stage %s, got %s", StageDurabilityComputed, tr.Stage())
	}

	// Wrap angle on the small pulley is below π.
	if !(r.WrapAngle > 2.7 && r.WrapAngle < math.Pi) {
		t.Errorf("expected wrap angle near 161°, got %g rad", r.WrapAngle)
	}

	// Net tension drives the torque.
	if !scalar.EqualWithinAbsOrRel((r.F1-r.F2)*0.118/2, r.Torque, 1e-9, 1e-9) {
		t.Errorf("expected (F1-F2)·d/2 = T, got %g vs %g", (r.F1-r.F2)*0.059, r.Torque)
	}

	c := tr.Constants
	e := math.Exp(c.Mu * r.WrapAngle / math.Sin(c.GrooveAngle/2))
	if !scalar.EqualWithinAbsOrRel((r.F1-r.Fc)/(r.F2-r.Fc), e, 1e-9, 1e-9) {
		t.Errorf("expected tension ratio %g, got %g", e, (r.F1-r.Fc)/(r.F2-r.Fc))
	}

	if !(r.LifeCycles > 0 && r.LifeCycles <= MaxLifeCycles) {
		t.Errorf("expected life within (0, %g], got %g", MaxLifeCycles, r.LifeCycles)
	}
	if !(r.LifeTime > 0) {
		t.Errorf("expected positive life time, got %g", r.LifeTime)
	}
}

func TestDurabilityCap(t *testing.T) {
	tr := referenceDrive()
	tr.Power = 1
	r, err := tr.CalculateTransmission()
	if err != nil {
		t.Fatal(err)
	}
	if r.LifeCycles != MaxLifeCycles {
		t.Errorf("expected capped life %g, got %g", MaxLifeCycles, r.LifeCycles)
	}
}

func TestExplicitWrapAngle(t *testing.T) {
	tr := referenceDrive()
	tr.Constants.WrapAngle = 2.5
	r, err := tr.CalculateTransmission()
	if err != nil {
		t.Fatal(err)
	}
	if r.WrapAngle != 2.5 {
		t.Errorf("expected configured wrap angle, got %g", r.WrapAngle)
	}
}
