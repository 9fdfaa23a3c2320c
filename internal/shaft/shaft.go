package shaft

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gored/internal/material"
)

// Stage tracks how far a shaft has been calculated.
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

// Config holds the inputs of a shaft. Lengths in m, forces in N, torque in N·m.
type Config struct {
	Label      string
	Length     float64
	Resolution int // samples per m
	Material   material.Material
	Sections   []Section
	Loads      []PointLoad
	Torque     float64

	// CorrectionPoints are the two supports where deflection should vanish.
	// Both must fall exactly on the sample grid.
	CorrectionPoints [2]float64

	StressFocus []StressFocus

	// Endurance overrides DefaultEnduranceFactors when set.
	Endurance *EnduranceFactors
}

// Shaft is a straight circular shaft under point loads and a constant torque.
type Shaft struct {
	Label            string
	Length           float64
	Resolution       int
	Material         material.Material
	Profile          Profile
	Loads            Loads
	Torque           float64
	CorrectionPoints [2]float64
	StressFocus      []StressFocus
	Endurance        EnduranceFactors

	z    []float64
	diam []float64
	i    []float64
	j    []float64

	correctionIdx [2]int

	stage  Stage
	forces *ForceResult
	stress *StressResult
}

// New validates the configuration and samples the geometry along the shaft.
func New(cfg Config) (*Shaft, error) {
	if !(cfg.Length > 0) || math.IsInf(cfg.Length, 0) {
		return nil, invalid("length", "must be positive, got %g", cfg.Length)
	}
	if cfg.Resolution <= 0 {
		return nil, invalid("resolution", "must be positive, got %d", cfg.Resolution)
	}
	if steps := cfg.Length * float64(cfg.Resolution); math.Abs(steps-math.Round(steps)) > 1e-9 {
		return nil, invalid("length", "%g m is not a whole number of steps at %d samples/m", cfg.Length, cfg.Resolution)
	}

	profile, err := NewProfile(cfg.Sections)
	if err != nil {
		return nil, err
	}
	loads, err := NewLoads(cfg.Loads...)
	if err != nil {
		return nil, err
	}
	for k, f := range cfg.StressFocus {
		if f.Start > f.End {
			return nil, invalid("stress focus", "interval %d ends at %g m before its start %g m", k+1, f.End, f.Start)
		}
	}

	s := &Shaft{
		Label:            cfg.Label,
		Length:           cfg.Length,
		Resolution:       cfg.Resolution,
		Material:         cfg.Material,
		Profile:          profile,
		Loads:            loads,
		Torque:           cfg.Torque,
		CorrectionPoints: cfg.CorrectionPoints,
		StressFocus:      append([]StressFocus(nil), cfg.StressFocus...),
		Endurance:        DefaultEnduranceFactors,
	}
	if cfg.Endurance != nil {
		s.Endurance = *cfg.Endurance
	}

	s.sample()

	if cfg.CorrectionPoints[0] == cfg.CorrectionPoints[1] {
		return nil, invalid("correction points", "must be distinct, both are %g m", cfg.CorrectionPoints[0])
	}
	for k, p := range cfg.CorrectionPoints {
		idx, ok := s.IndexOf(p)
		if !ok {
			return nil, invalid("correction points", "%g m is not a sample position at %d samples/m", p, cfg.Resolution)
		}
		s.correctionIdx[k] = idx
	}

	return s, nil
}

// sample builds the grid z = k/resolution covering [0, length] and the
// section properties at every sample.
func (s *Shaft) sample() {
	res := float64(s.Resolution)
	n := int(math.Ceil(s.Length*res-1e-9)) + 1

	s.z = make([]float64, n)
	s.diam = make([]float64, n)
	s.i = make([]float64, n)
	s.j = make([]float64, n)
	for k := range s.z {
		z := float64(k) / res
		d := s.Profile.DiameterAt(z)
		s.z[k] = z
		s.diam[k] = d
		s.i[k] = SecondMoment(d)
		s.j[k] = PolarMoment(d)
	}
}

// IndexOf returns the sample index whose position equals z exactly.
func (s *Shaft) IndexOf(z float64) (int, bool) {
	k := int(math.Round(z * float64(s.Resolution)))
	if k < 0 || k >= len(s.z) || s.z[k] != z {
		return 0, false
	}
	return k, true
}

// Samples returns the number of grid points.
func (s *Shaft) Samples() int {
	return len(s.z)
}

// Z returns the sample positions. The slice must not be modified.
func (s *Shaft) Z() []float64 { return s.z }

// Diameter returns the diameter at every sample.
func (s *Shaft) Diameter() []float64 { return s.diam }

// I returns the second moment of area at every sample.
func (s *Shaft) I() []float64 { return s.i }

// J returns the polar moment of area at every sample.
func (s *Shaft) J() []float64 { return s.j }

// Stage reports the last completed calculation step.
func (s *Shaft) Stage() Stage {
	return s.stage
}

// Forces returns the internal forces and deflections.
func (s *Shaft) Forces() (*ForceResult, error) {
	if s.stage < StageForcesComputed {
		return nil, fmt.Errorf("%w: forces requested at stage %s", ErrSequence, s.stage)
	}
	return s.forces, nil
}

// Stress returns the stresses and safety factors.
func (s *Shaft) Stress() (*StressResult, error) {
	if s.stage < StageStressComputed {
		return nil, fmt.Errorf("%w: stress requested at stage %s", ErrSequence, s.stage)
	}
	return s.stress, nil
}
