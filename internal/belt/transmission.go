package belt

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrSequence is returned when a calculation step runs before its prerequisite.
var ErrSequence = errors.New("belt: calculation out of sequence")

// ErrNoCatalogLength is returned when no catalog belt is long enough.
var ErrNoCatalogLength = errors.New("belt: no catalog length fits the drive")

// Stage tracks the calculation steps of a belt drive. Each step requires the
// previous one.
type Stage int

const (
	StageUninitialized Stage = iota
	StageGeometrySet
	StageConstantsSet
	StageForcesComputed
	StageDurabilityComputed
)

func (s Stage) String() string {
	switch s {
	case StageUninitialized:
		return "uninitialized"
	case StageGeometrySet:
		return "geometry set"
	case StageConstantsSet:
		return "constants set"
	case StageForcesComputed:
		return "forces computed"
	case StageDurabilityComputed:
		return "durability computed"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Transmission is a V-belt drive from the driver pulley P1 to the driven
// pulley P2.
type Transmission struct {
	P1       Pulley
	P2       Pulley
	Power    float64 // W
	Position float64 // axial position of P2 on its shaft (m)

	// BeltLength fixes the belt length (m). Zero selects the shortest
	// Catalog length not below the computed length.
	BeltLength float64
	Catalog    []float64
	Constants  Constants

	stage  Stage
	result Result
}

// Result holds the state of every completed step.
type Result struct {
	// Geometry
	Ratio          float64 // D/d
	ComputedLength float64 // Ld1 for center distance D+d (m)
	BeltLength     float64 // selected belt length (m)
	CenterDistance float64 // m

	// Constants
	WrapAngle float64 // rad

	// Forces
	Velocity float64 // belt speed (m/s)
	Torque   float64 // N·m on P1
	Fc       float64 // centrifugal tension (N)
	F1       float64 // tight side (N)
	F2       float64 // slack side (N)

	// Durability
	LifeCycles float64 // belt passes
	LifeTime   float64 // operating-time estimate
}

// NewTransmission creates a drive with the default catalog and constants.
func NewTransmission(p1, p2 Pulley, power, position float64) *Transmission {
	return &Transmission{
		P1:        p1,
		P2:        p2,
		Power:     power,
		Position:  position,
		Catalog:   DefaultCatalog,
		Constants: DefaultConstants(),
	}
}

// Stage reports the last completed step.
func (t *Transmission) Stage() Stage {
	return t.stage
}

// Result returns the results accumulated up to the current stage.
func (t *Transmission) Result() Result {
	return t.result
}

func (t *Transmission) require(step string, need Stage) error {
	if t.stage < need {
		return fmt.Errorf("%w: %s requires %s, stage is %s", ErrSequence, step, need, t.stage)
	}
	return nil
}

// CalculateGeometry sizes the belt and the center distance.
func (t *Transmission) CalculateGeometry() error {
	D := t.P2.PrimitiveDiameter
	d := t.P1.PrimitiveDiameter

	r := Result{Ratio: D / d}
	cc := D + d
	r.ComputedLength = 2*cc + math.Pi*(D+d)/2 + (D-d)*(D-d)/(4*cc)

	r.BeltLength = t.BeltLength
	if r.BeltLength == 0 {
		l, err := selectLength(t.Catalog, r.ComputedLength)
		if err != nil {
			return err
		}
		r.BeltLength = l
	}

	a := 2*r.BeltLength - math.Pi*(D+d)
	r.CenterDistance = (a + math.Sqrt(a*a-8*(D-d)*(D-d))) / 8

	t.result = r
	t.stage = StageGeometrySet
	return nil
}

func selectLength(catalog []float64, min float64) (float64, error) {
	sorted := append([]float64(nil), catalog...)
	sort.Float64s(sorted)
	i := sort.SearchFloat64s(sorted, min)
	if i == len(sorted) {
		return 0, fmt.Errorf("%w: computed length %.4f m", ErrNoCatalogLength, min)
	}
	return sorted[i], nil
}

// SetConstants resolves the wrap angle and fixes the belt constants.
func (t *Transmission) SetConstants() error {
	if err := t.require("constants", StageGeometrySet); err != nil {
		return err
	}
	r := t.result
	r.WrapAngle = t.Constants.WrapAngle
	if r.WrapAngle == 0 {
		D, d := t.P2.PrimitiveDiameter, t.P1.PrimitiveDiameter
		r.WrapAngle = math.Pi - 2*math.Asin((D-d)/(2*r.CenterDistance))
	}
	r.Velocity, r.Torque, r.Fc, r.F1, r.F2 = 0, 0, 0, 0, 0
	r.LifeCycles, r.LifeTime = 0, 0

	t.result = r
	t.stage = StageConstantsSet
	return nil
}

// CalculateForces solves the tight and slack side tensions from the belt
// friction relation (F1 - Fc)/(F2 - Fc) = exp(μθ/sin(φ/2)).
func (t *Transmission) CalculateForces() error {
	if err := t.require("forces", StageConstantsSet); err != nil {
		return err
	}
	r, c := t.result, t.Constants
	d := t.P1.PrimitiveDiameter

	r.Velocity = t.P1.AngularVelocity * d / 2
	r.Fc = c.Kc * math.Pow(r.Velocity/1000, 2)
	e := math.Exp(c.Mu * r.WrapAngle / math.Sin(c.GrooveAngle/2))
	r.Torque = t.Power / t.P1.AngularVelocity

	r.F2 = (r.Fc - 2*r.Torque/d - r.Fc*e) / (1 - e)
	r.F1 = r.F2 + 2*r.Torque/d
	r.LifeCycles, r.LifeTime = 0, 0

	t.result = r
	t.stage = StageForcesComputed
	return nil
}

// CalculateDurability estimates the belt life from the peak tensions on
// both sheaves.
func (t *Transmission) CalculateDurability() error {
	if err := t.require("durability", StageForcesComputed); err != nil {
		return err
	}
	r, c := t.result, t.Constants
	d1, d2 := t.P1.PrimitiveDiameter, t.P2.PrimitiveDiameter

	t1 := r.F1 + c.Kb/d1
	t2 := r.F1 + c.Kb/d2
	np := 1 / (math.Pow(c.K/t1, -c.B) + math.Pow(c.K/t2, -c.B))
	if !(np < MaxLifeCycles) {
		np = MaxLifeCycles
	}
	r.LifeCycles = np
	r.LifeTime = np * (math.Pi * d1) / (720 * r.Velocity)

	t.result = r
	t.stage = StageDurabilityComputed
	return nil
}

// CalculateTransmission runs every step in order.
func (t *Transmission) CalculateTransmission() (Result, error) {
	steps := []func() error{
		t.CalculateGeometry,
		t.SetConstants,
		t.CalculateForces,
		t.CalculateDurability,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return Result{}, err
		}
	}
	return t.result, nil
}
