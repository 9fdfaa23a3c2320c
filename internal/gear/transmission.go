package gear

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gored/internal/agma"
)

// ErrSequence is returned when a calculation step runs before its prerequisite.
var ErrSequence = errors.New("gear: calculation out of sequence")

// Stage tracks how far a transmission has been calculated.
type Stage int

const (
	StageConstructed Stage = iota
	StageForcesComputed
	StageStressComputed
)

func (s Stage) String() string {
	switch s {
	case StageConstructed:
		return "constructed"
	case StageForcesComputed:
		return "forces computed"
	case StageStressComputed:
		return "stress computed"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Transmission is a pinion (Gear1) driving a gear (Gear2).
type Transmission struct {
	Gear1        *Gear
	Gear2        *Gear
	SecondsOfUse float64 // design life
	Position     float64 // axial position of the mesh on both shafts (m)
	Factors      agma.LoadFactors

	stage  Stage
	forces ForceResult
	stress StressResult
}

// ForceResult holds the kinematics and tooth forces of a mesh.
type ForceResult struct {
	W1, W2 float64 // angular speed (rad/s)
	P1, P2 float64 // power (W)
	T1, T2 float64 // torque (N·m)

	GearingEfficiency float64

	Ft1, Ft2 float64 // tangential force (N)
	Fn1, Fn2 float64 // normal force (N)
	Fr1, Fr2 float64 // radial force (N)
}

// StressResult holds stresses (Pa) and safety factors of both gears.
type StressResult struct {
	Kv float64 // dynamic factor
	Cp float64 // elastic coefficient
	I  float64 // surface geometry factor

	SigmaB1, SigmaB2 float64 // bending stress
	SigmaC1, SigmaC2 float64 // contact stress

	N1, N2 float64 // load cycles

	CSb1, CSb2 float64 // bending fatigue safety factor
	CSc1, CSc2 float64 // contact fatigue safety factor
}

// NewTransmission creates a mesh with the default AGMA load factors.
func NewTransmission(gear1, gear2 *Gear, secondsOfUse, position float64) *Transmission {
	return &Transmission{
		Gear1:        gear1,
		Gear2:        gear2,
		SecondsOfUse: secondsOfUse,
		Position:     position,
		Factors:      agma.DefaultLoadFactors,
	}
}

// Stage reports the last completed calculation step.
func (t *Transmission) Stage() Stage {
	return t.stage
}

// CalculateForces computes speeds, torques and tooth forces for the given
// power (W) and rotational speed (rpm) at the pinion.
func (t *Transmission) CalculateForces(inputPower, inputVelocity, rollerEfficiency float64) ForceResult {
	g1, g2 := t.Gear1, t.Gear2
	f := ForceResult{}

	f.W1 = inputVelocity * math.Pi / 30
	f.P1 = inputPower
	f.T1 = inputPower / f.W1

	z1, z2 := g1.NumberOfTeeth, g2.NumberOfTeeth
	f.GearingEfficiency = 1 - 0.5*(z2-z1)/(z1*z2)

	f.W2 = f.W1 * g1.PitchDiameter / g2.PitchDiameter
	f.P2 = inputPower * rollerEfficiency * f.GearingEfficiency
	f.T2 = f.P2 / f.W2

	f.Ft1 = f.T1 * 2 / g1.PitchDiameter
	f.Ft2 = f.T2 * 2 / g2.PitchDiameter
	f.Fn1 = f.Ft1 / math.Cos(g1.PressureAngle)
	f.Fn2 = f.Ft2 / math.Cos(g2.PressureAngle)
	f.Fr1 = f.Fn1 * math.Sin(g1.PressureAngle)
	f.Fr2 = f.Fn2 * math.Sin(g2.PressureAngle)

	t.forces = f
	t.stress = StressResult{}
	t.stage = StageForcesComputed
	return f
}

// Forces returns the tooth forces once CalculateForces has run.
func (t *Transmission) Forces() (ForceResult, error) {
	if t.stage < StageForcesComputed {
		return ForceResult{}, fmt.Errorf("%w: forces requested at stage %s", ErrSequence, t.stage)
	}
	return t.forces, nil
}

// CalculateStress computes bending and contact stresses and their fatigue
// safety factors.
func (t *Transmission) CalculateStress() (StressResult, error) {
	if t.stage < StageForcesComputed {
		return StressResult{}, fmt.Errorf("%w: stress requires forces, stage is %s", ErrSequence, t.stage)
	}

	s := StressResult{}
	t.bendingStress(&s)
	t.contactStress(&s)
	t.bendingFatigue(&s)
	t.contactFatigue(&s)

	t.stress = s
	t.stage = StageStressComputed
	return s, nil
}

// Stress returns the stress results once CalculateStress has run.
func (t *Transmission) Stress() (StressResult, error) {
	if t.stage < StageStressComputed {
		return StressResult{}, fmt.Errorf("%w: stress requested at stage %s", ErrSequence, t.stage)
	}
	return t.stress, nil
}

func (t *Transmission) pitchLineVelocity() float64 {
	return t.forces.W1 * t.Gear1.PitchDiameter / 2
}

// bendingStress uses the AGMA form σ = Ft·Ka·Km·Ks·Kb·Ki / (F·m·J·Kv)
func (t *Transmission) bendingStress(s *StressResult) {
	g1, g2, f := t.Gear1, t.Gear2, t.forces
	s.Kv = agma.DynamicFactor(t.Factors.Qv, t.pitchLineVelocity())
	k := t.Factors.BendingTotal()

	s.SigmaB1 = f.Ft1 * k / (g1.Thickness * g1.Module * g1.J * s.Kv)
	s.SigmaB2 = f.Ft2 * k / (g2.Thickness * g2.Module * g2.J * s.Kv)
}

// contactStress uses σc = Cp·√(Ft·Ka·Km·Ks·Cf / (F·I·d·Kv))
func (t *Transmission) contactStress(s *StressResult) {
	g1, g2, f := t.Gear1, t.Gear2, t.forces
	s.Cp = agma.ElasticCoefficient(g1.Material.ElasticityModule, g1.Material.PoissonCoef)
	s.I = agma.GeometryFactor(g1.PitchDiameter, g2.PitchDiameter, g1.Module, g1.PressureAngle)
	k := t.Factors.ContactTotal()

	s.SigmaC1 = s.Cp * math.Sqrt(f.Ft1*k/(g1.Thickness*s.I*g1.PitchDiameter*s.Kv))
	s.SigmaC2 = s.Cp * math.Sqrt(f.Ft2*k/(g2.Thickness*s.I*g2.PitchDiameter*s.Kv))
}

func (t *Transmission) bendingFatigue(s *StressResult) {
	s.N1 = agma.LoadCycles(t.forces.W1, t.SecondsOfUse)
	s.N2 = agma.LoadCycles(t.forces.W2, t.SecondsOfUse)

	kTR := t.Factors.Kt * t.Factors.Kr
	sfb1 := agma.BendingLifeFactor(s.N1) * t.Gear1.Material.BendingStressStrength / kTR
	sfb2 := agma.BendingLifeFactor(s.N2) * t.Gear2.Material.BendingStressStrength / kTR

	s.CSb1 = sfb1 / s.SigmaB1
	s.CSb2 = sfb2 / s.SigmaB2
}

// contactFatigue compares squared stress ratios so the factor is linear in load.
func (t *Transmission) contactFatigue(s *StressResult) {
	c := t.Factors.Ch / (t.Factors.Ct * t.Factors.Cr)
	sfc1 := agma.ContactLifeFactor(s.N1) * t.Gear1.Material.ContactStressStrength * c
	sfc2 := agma.ContactLifeFactor(s.N2) * t.Gear2.Material.ContactStressStrength * c

	s.CSc1 = math.Pow(sfc1/s.SigmaC1, 2)
	s.CSc2 = math.Pow(sfc2/s.SigmaC2, 2)
}
